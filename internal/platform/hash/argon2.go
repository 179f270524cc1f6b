package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/pkg/security"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("invalid hash format")

type argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
}

var _ Hasher = (*argon2Hasher)(nil)

func NewArgon2Hasher(cfg *config.Argon2) Hasher {
	return &argon2Hasher{
		memory:     cfg.Memory,
		iterations: cfg.Iterations,
		threads:    cfg.Threads,
		saltLen:    cfg.SaltLength,
		keyLen:     cfg.KeyLength,
	}
}

// Hash returns the PHC-formatted argon2id hash of plain.
func (h *argon2Hasher) Hash(plain string) (string, error) {
	salt, err := security.GenerateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.iterations, h.memory, h.threads, h.keyLen)

	saltBase64 := base64.RawStdEncoding.EncodeToString(salt)
	keyBase64 := base64.RawStdEncoding.EncodeToString(key)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.threads, saltBase64, keyBase64)

	return encoded, nil
}

// Verify checks plain against a hash produced by Hash. The parameters
// embedded in the hash are used, not the hasher's own.
func (h *argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: version: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: params: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("base64 decode salt: %w", err)
	}

	actualKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("base64 decode key: %w", err)
	}

	keyLen := len(actualKey)
	if keyLen == 0 || keyLen > int(^uint32(0)) {
		return false, fmt.Errorf("%w: key length %d", ErrInvalidHash, keyLen)
	}

	computedKey := argon2.IDKey([]byte(plain), salt, iterations, memory, threads, uint32(keyLen))
	return subtle.ConstantTimeCompare(computedKey, actualKey) == 1, nil
}
