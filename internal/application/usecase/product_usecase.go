package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/money"
	"github.com/jhoicas/stockflow-api/pkg/normalize"
)

// ValidationError agrupa errores de validación por campo, con las claves de
// razón del contrato original (required, invalid_decimal, ...).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validación fallida" }

// ProductUseCase casos de uso para productos: alta transaccional con
// inventario inicial opcional, lectura y listado con búsqueda normalizada.
type ProductUseCase struct {
	repo       repository.ProductRepository
	warehouses repository.WarehouseRepository
	txRunner   TxRunner
	parser     *money.Parser
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, warehouses repository.WarehouseRepository, txRunner TxRunner, parser *money.Parser) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouses: warehouses, txRunner: txRunner, parser: parser}
}

// Create valida y crea un producto. Si viene warehouse_id, fija además el
// inventario inicial en esa bodega; ambas escrituras van en una sola
// transacción. Errores:
//   - *ValidationError con detalle por campo
//   - domain.ErrNotFound si la bodega no existe (se verifica antes de escribir)
//   - domain.ErrDuplicate si el SKU ya existe (lo detecta la constraint, no un pre-chequeo)
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "required"
	}
	if sku == "" {
		fields["sku"] = "required"
	}
	price, err := uc.parser.ParseJSON(in.Price)
	if err != nil {
		fields["price"] = "invalid_decimal"
	}
	initialQty, err := parseInitialQuantity(in.InitialQuantity)
	if err != nil {
		fields["initial_quantity"] = "must_be_non_negative_integer"
	}
	if len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}

	if in.WarehouseID != nil {
		wh, err := uc.warehouses.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return 0, err
		}
		if wh == nil {
			return 0, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		Name:      name,
		SKU:       sku,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.WarehouseID != nil {
			return inventoryRepo.Upsert(ctx, &entity.InventoryLevel{
				ProductID:   product.ID,
				WarehouseID: *in.WarehouseID,
				Quantity:    decimal.NewFromInt(initialQty),
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda opcional insensible a mayúsculas y tildes.
func (uc *ProductUseCase) List(ctx context.Context, q string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, normalize.SearchTerm(q), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// parseInitialQuantity acepta número o string numérico (los clientes del
// sistema original envían ambos); ausente vale 0, negativos se rechazan.
func parseInitialQuantity(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return 0, domain.ErrInvalidInput
		}
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || n < 0 {
			return 0, domain.ErrInvalidInput
		}
		return n, nil
	}
	return 0, domain.ErrInvalidInput
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Price:         p.Price,
		ProductTypeID: p.ProductTypeID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
