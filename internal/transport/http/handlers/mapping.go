package handlers

import (
	"eshop-service/internal/models"
	"eshop-service/internal/service"
	"eshop-service/internal/transport/http/dto"
)

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toProductResponse(p *models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductListResponse(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toCartItemResponse(line service.CartLine) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:          line.ID.String(),
		ProductID:   line.ProductID.String(),
		ProductName: line.ProductName,
		Price:       line.Price.StringFixed(2),
		Quantity:    line.Quantity,
	}
}

func toCartResponse(view *service.CartView) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, toCartItemResponse(line))
	}
	return dto.CartResponse{
		CartID: view.CartID.String(),
		UserID: view.UserID.String(),
		Items:  items,
	}
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID.String(),
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
		})
	}
	return dto.OrderResponse{
		ID:            o.ID.String(),
		UserID:        o.UserID.String(),
		TotalPrice:    o.TotalPrice.StringFixed(2),
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}

func toOrderListResponse(orders []models.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func toCryptoPaymentResponse(p *models.CryptoPayment) dto.CryptoPaymentResponse {
	return dto.CryptoPaymentResponse{
		ID:              p.ID.String(),
		OrderID:         p.OrderID.String(),
		WalletAddress:   p.WalletAddress,
		CryptoAmount:    p.CryptoAmount.StringFixed(8),
		CryptoCurrency:  p.CryptoCurrency,
		TransactionHash: p.TransactionHash,
		IsConfirmed:     p.IsConfirmed,
		CreatedAt:       p.CreatedAt,
	}
}
