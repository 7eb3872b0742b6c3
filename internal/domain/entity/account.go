package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account representa al freelancer dueño de todos los demás registros.
// El email es único: es la clave de idempotencia del bootstrap.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Company      string
	Phone        string
	Timezone     string
	Currency     string
	HourlyRate   decimal.Decimal
	Bio          string
	Skills       []string
	Website      string
	SocialLinks  map[string]string
	Settings     map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
