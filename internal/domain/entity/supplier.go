package entity

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/almacen-api/internal/domain"
)

// Supplier representa un proveedor registrado en el almacén.
// Es un value entity: se valida al construirse y no se modifica después.
// Name es la clave única dentro del almacén.
type Supplier struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// NewSupplier construye un proveedor validado.
// Address acepta cualquier texto, incluso vacío.
func NewSupplier(name, email, phone, address string) (*Supplier, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("%w: el nombre de la empresa debe tener al menos 2 caracteres", domain.ErrInvalidInput)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: formato de correo electrónico incorrecto", domain.ErrInvalidInput)
	}
	if !validPhone(phone) {
		return nil, fmt.Errorf("%w: formato de número de teléfono incorrecto", domain.ErrInvalidInput)
	}
	return &Supplier{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}, nil
}

// validEmail exige parte local no vacía y sin espacios, y un dominio con
// punto cuya extensión tenga al menos 2 caracteres. El separador es el
// ÚLTIMO '@' de la cadena.
func validEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	local, domainPart := email[:at], email[at+1:]
	if local == "" || strings.Contains(local, " ") {
		return false
	}
	dot := strings.LastIndex(domainPart, ".")
	if dot < 0 {
		return false
	}
	host, ext := domainPart[:dot], domainPart[dot+1:]
	return host != "" && len(ext) >= 2
}

// validPhone acepta un '+' inicial opcional seguido de 10 a 15 dígitos.
func validPhone(phone string) bool {
	if phone == "" {
		return false
	}
	phone = strings.TrimPrefix(phone, "+")
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(phone) >= 10 && len(phone) <= 15
}

// String representación legible para logs y listados.
func (s *Supplier) String() string {
	return fmt.Sprintf("%s (tel: %s, email: %s)", s.Name, s.Phone, s.Email)
}
