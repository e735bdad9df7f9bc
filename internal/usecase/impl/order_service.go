package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/irabeny89/ebbs-io/internal/delivery/context"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates an order from catalog prices. Line costs and the order
// total are recomputed from the products table inside the transaction, so a
// client-supplied price can never leak into an order.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		ClientID:       input.ClientID,
		Phone:          input.Phone,
		State:          input.State,
		Address:        input.Address,
		NearestBusStop: input.NearestBusStop,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		serviceRepo := repoFactory.NewServiceRepository()

		providerTitles := map[uuid.UUID]string{}
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}

			title, ok := providerTitles[product.ProviderID]
			if !ok {
				svc, err := serviceRepo.FindByID(ctx, product.ProviderID)
				if err != nil {
					return err
				}
				title = svc.Title
				providerTitles[product.ProviderID] = title
			}

			order.Items = append(order.Items, entity.OrderItem{
				ProductID:     product.ID,
				ProviderID:    product.ProviderID,
				ProviderTitle: title,
				Name:          product.Name,
				Price:         product.Price,
				Quantity:      line.Quantity,
				Cost:          product.Price * float64(line.Quantity),
				Status:        entity.StatusPending,
			})
		}

		order.TotalCost = order.TotalItemCost()

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Order placement failed", slog.Any("clientID", input.ClientID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Float64("totalCost", order.TotalCost),
	)

	return order, nil
}

// MyOrders pages through the orders the caller placed as a buyer.
func (srv *orderService) MyOrders(ctx context.Context, clientID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Order], error) {
	orders, err := srv.orderRepo.ListByClient(ctx, clientID)
	if err != nil {
		return pagination.Connection[*entity.Order]{}, err
	}

	return pagination.Paginate(toPointers(orders), req), nil
}

// MyRequests pages through the orders containing items the caller sells.
func (srv *orderService) MyRequests(ctx context.Context, ownerID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Order], error) {
	svc, err := srv.serviceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return pagination.Connection[*entity.Order]{}, err
	}

	orders, err := srv.orderRepo.ListByProvider(ctx, svc.ID)
	if err != nil {
		return pagination.Connection[*entity.Order]{}, err
	}

	return pagination.Paginate(toPointers(orders), req), nil
}

// UpdateItemStatus moves one sold item to a new fulfilment status.
func (srv *orderService) UpdateItemStatus(ctx context.Context, input *usecase.UpdateItemStatusInput) error {
	status := entity.OrderStatus(input.Status)
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	svc, err := srv.serviceRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}

	if err := srv.orderRepo.UpdateItemStatus(ctx, svc.ID, input.ItemID, status); err != nil {
		return err
	}

	srv.log(ctx).Info("Order item status updated", slog.Any("itemID", input.ItemID), slog.String("status", status.String()))

	return nil
}

// SetDeliveryDate records the promised delivery date of an order the caller
// is fulfilling. The caller must actually have items in the order.
func (srv *orderService) SetDeliveryDate(ctx context.Context, input *usecase.SetDeliveryDateInput) error {
	svc, err := srv.serviceRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return err
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	sells := false
	for _, item := range order.Items {
		if item.ProviderID == svc.ID {
			sells = true

			break
		}
	}
	if !sells {
		return domainerrors.ErrForbidden
	}

	return srv.orderRepo.SetDeliveryDate(ctx, input.OrderID, input.DeliveryDate)
}

// Stats tallies the caller's sold items by fulfilment status.
func (srv *orderService) Stats(ctx context.Context, ownerID uuid.UUID) (entity.OrderStats, error) {
	svc, err := srv.serviceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items, err := srv.orderRepo.ListItemsByProvider(ctx, svc.ID)
	if err != nil {
		return nil, err
	}

	return entity.FoldOrderStats(items), nil
}
