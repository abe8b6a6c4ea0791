package utils

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

var (
	ErrInvalidHash         = argon2id.ErrInvalidHash
	ErrIncompatibleVersion = argon2id.ErrIncompatibleVersion
)

// Argon2Params là tham số cho argon2id
type Argon2Params = argon2id.Params

// DefaultArgon2Params theo khuyến nghị OWASP cho argon2id
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// PasswordHasher băm và kiểm tra mật khẩu bằng argon2id.
// Chuỗi hash có dạng $argon2id$v=19$m=...,t=...,p=...$salt$hash.
type PasswordHasher struct {
	params     Argon2Params
	createHash func(password string, params *argon2id.Params) (string, error)
}

func NewPasswordHasher(params Argon2Params) *PasswordHasher {
	return &PasswordHasher{params: params, createHash: argon2id.CreateHash}
}

// Hash tạo salt ngẫu nhiên và trả về chuỗi hash đã mã hóa
func (h *PasswordHasher) Hash(password string) (string, error) {
	params := h.params
	hash, err := h.createHash(password, &params)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Verify trả về false (không lỗi) khi mật khẩu sai.
// Chỉ trả về lỗi khi chuỗi hash không hợp lệ.
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	p, salt, key, err := argon2id.DecodeHash(encoded)
	switch {
	case err == nil:
	case errors.Is(err, ErrIncompatibleVersion), errors.Is(err, ErrInvalidHash):
		return false, err
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	// tham số 0 hoặc salt/key rỗng làm argon2 panic hoặc so khớp mọi mật khẩu
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 || len(salt) == 0 || len(key) == 0 {
		return false, ErrInvalidHash
	}

	return argon2id.ComparePasswordAndHash(password, encoded)
}
