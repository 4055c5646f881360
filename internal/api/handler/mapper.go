package handler

import (
	"github.com/orderdesk/orders-api/internal/core/ports"
)

// --- Request → Service input ---

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		Name:  req.Name,
		Email: req.Email,
	}
}

func toCreateOrderInput(req createOrderRequest, userID, idempotencyKey string) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		UserID:         userID,
		ClientID:       req.ClientID,
		Total:          req.Total,
		IdempotencyKey: idempotencyKey,
	}
}

func toUpdateOrderInput(req updateOrderRequest) ports.UpdateOrderInput {
	return ports.UpdateOrderInput{Total: req.Total}
}

// --- Service output → Response ---

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		Token:    r.Token,
		Email:    r.Email,
		Username: r.Username,
	}
}

func toClientResponse(c ports.ClientDTO) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func toClientResponses(cs []ports.ClientDTO) []clientResponse {
	out := make([]clientResponse, len(cs))
	for i, c := range cs {
		out[i] = toClientResponse(c)
	}
	return out
}

func toOrderResponse(o ports.OrderDTO) orderResponse {
	return orderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Total:     o.Total.StringFixed(2),
		OrderedAt: o.OrderedAt,
	}
}

func toOrderResponses(os []ports.OrderDTO) []orderResponse {
	out := make([]orderResponse, len(os))
	for i, o := range os {
		out[i] = toOrderResponse(o)
	}
	return out
}
