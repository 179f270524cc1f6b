// Command hashpass prints the password_hash of a roster entry.
//
//	hashpass --config config.json
//	hashpass --password MySafeSpace
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/platform/hash"
	"github.com/ferdiebergado/sulat/internal/roster"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) error {
	var cfgFile, password string

	flagSet := pflag.NewFlagSet("hashpass", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&cfgFile, "config", "", "config file with argon2 settings (defaults are used when empty)")
	flagSet.StringVarP(&password, "password", "p", "", "password to hash; prompted for when empty")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if password == "" {
		var err error
		password, err = readPassword(stdin, stderr)
		if err != nil {
			return err
		}
	}

	if password == "" {
		return errors.New("password is empty")
	}

	hashed, err := hash.NewArgon2Hasher(&cfg.Argon2).Hash(roster.NormalizePassword(password))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = fmt.Fprintln(stdout, hashed)
	return err
}

// readPassword prompts without echo on a terminal and reads a single line
// otherwise.
func readPassword(stdin *os.File, stderr io.Writer) (string, error) {
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
