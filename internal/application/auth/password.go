package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashea y verifica contraseñas con bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher construye el hasher; cost <= 0 usa bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de la contraseña.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches informa si password corresponde al hash.
func (h *PasswordHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
