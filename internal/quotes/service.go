package quotes

import (
	"errors"
	"fmt"
	"strings"

	"cotizador/internal"
	"cotizador/internal/storage"
)

// ErrInvalidInput marks validation failures; persistence errors are wrapped
// separately so callers can tell a bad request from a failed write.
var ErrInvalidInput = errors.New("invalid quote")

type Service struct {
	db *storage.DB
}

func NewService(db *storage.DB) *Service {
	return &Service{db: db}
}

// Save validates the input, derives the total server-side and persists the
// quotation in one transactional write. On failure nothing is stored and the
// caller keeps its form state for a retry.
func (s *Service) Save(in internal.QuoteInput) (internal.QuoteRow, error) {
	if err := validate(in); err != nil {
		return internal.QuoteRow{}, err
	}

	row := internal.QuoteRow{
		Cotizador:      strings.TrimSpace(in.Cotizador),
		Cliente:        strings.TrimSpace(in.Cliente),
		Producto:       strings.TrimSpace(in.Producto),
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		Total:          float64(in.Cantidad) * in.PrecioUnitario,
	}

	id, err := s.db.InsertQuote(row)
	if err != nil {
		return internal.QuoteRow{}, fmt.Errorf("save quote: %w", err)
	}
	row.ID = id
	return row, nil
}

func (s *Service) List(limit int) ([]internal.QuoteRow, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.db.ListQuotes(limit)
}

func validate(in internal.QuoteInput) error {
	if strings.TrimSpace(in.Producto) == "" {
		return fmt.Errorf("%w: producto is required", ErrInvalidInput)
	}
	if in.Cantidad < 1 {
		return fmt.Errorf("%w: cantidad must be at least 1", ErrInvalidInput)
	}
	if in.PrecioUnitario < 0 {
		return fmt.Errorf("%w: precio_unitario must not be negative", ErrInvalidInput)
	}
	return nil
}
