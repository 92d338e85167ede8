package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidMoney indica que el valor recibido no puede interpretarse como monto.
var ErrInvalidMoney = errors.New("monto inválido")

// Escala fija de los montos: 2 decimales (centavos).
const Scale = 2

// Parser convierte entrada arbitraria (número o string JSON) en un decimal
// cuantizado a 2 decimales con redondeo half-up.
//
// La precisión es estado explícito del parser y no una variable global del
// proceso: cada instancia lleva la suya y dos peticiones concurrentes no
// pueden interferirse.
type Parser struct {
	precision int32 // dígitos significativos garantizados en operaciones derivadas
}

// DefaultPrecision dígitos significativos por defecto (paridad con contextos decimales típicos).
const DefaultPrecision = 28

// NewParser construye un parser con la precisión por defecto.
func NewParser() *Parser {
	return NewParserWithPrecision(DefaultPrecision)
}

// NewParserWithPrecision construye un parser con precisión explícita.
func NewParserWithPrecision(precision int32) *Parser {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Parser{precision: precision}
}

// Precision devuelve la precisión configurada.
func (p *Parser) Precision() int32 { return p.precision }

// Parse interpreta un string como monto y lo cuantiza a 2 decimales (half-up).
// Rechaza strings vacíos, no numéricos y tokens tipo NaN/Infinity.
func (p *Parser) Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidMoney
	}
	switch strings.ToLower(s) {
	case "nan", "inf", "infinity", "+inf", "-inf", "+infinity", "-infinity", "null", "none":
		return decimal.Zero, ErrInvalidMoney
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	// Round es half away from zero, equivalente a half-up para montos.
	return d.Round(Scale), nil
}

// ParseJSON interpreta un valor JSON crudo (número o string) como monto.
// null, booleanos, arrays u objetos producen ErrInvalidMoney.
func (p *Parser) ParseJSON(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, ErrInvalidMoney
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return p.Parse(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return p.Parse(n.String())
	}
	return decimal.Zero, ErrInvalidMoney
}
