package letter

const (
	MsgMarkedOpened   = "Letter marked as opened"
	MsgAlreadyOpened  = "Letter already marked as opened"
	MsgUnlocked       = "Letter unlocked"
	MsgFmtRestored    = "Letter %q has been restored and is now available again"
	MsgAllRestored    = "All letters have been restored"
	MsgNotInOpened    = "Letter not found in opened list"
	MsgPersonNotFound = "Person not found"
	MsgWrongPassword  = "Wrong password"
)
