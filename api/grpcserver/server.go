package grpcserver

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "freyr/api/pb"
	"freyr/domain/escrow"
	"freyr/service"
)

// Server adapts EscrowService to gRPC.
type Server struct {
	pb.UnimplementedEscrowServiceServer
	svc *service.EscrowService
	log *logrus.Entry
}

func NewServer(svc *service.EscrowService) *Server {
	return &Server{
		svc: svc,
		log: logrus.WithField("component", "grpc"),
	}
}

// -------------------- Commands --------------------

func (s *Server) CreateOrder(
	ctx context.Context,
	req *pb.CreateOrderRequest,
) (*pb.CreateOrderResponse, error) {
	id, err := s.svc.CreateOrder(
		escrow.AccountID(req.Account),
		escrow.AssetID(req.SellAsset),
		escrow.AssetID(req.BuyAsset),
		req.SellAmount,
		req.BuyAmount,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.WithFields(logrus.Fields{
		"account": req.Account, "order": id,
	}).Debug("CreateOrder")

	return &pb.CreateOrderResponse{OrderId: id}, nil
}

func (s *Server) FillOrder(
	ctx context.Context,
	req *pb.FillOrderRequest,
) (*pb.FillOrderResponse, error) {
	if err := s.svc.FillOrder(escrow.AccountID(req.Account), req.OrderId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.FillOrderResponse{}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	if err := s.svc.CancelOrder(escrow.AccountID(req.Account), req.OrderId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelOrderResponse{}, nil
}

// -------------------- Queries --------------------

func (s *Server) ListOrders(
	ctx context.Context,
	req *pb.ListOrdersRequest,
) (*pb.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(escrow.AccountID(req.Account))
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListOrdersResponse{
		Orders: make([]*pb.Order, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, &pb.Order{
			Id:         o.ID,
			Maker:      string(o.Maker),
			SellAsset:  string(o.SellAsset),
			BuyAsset:   string(o.BuyAsset),
			SellAmount: o.SellAmount,
			BuyAmount:  o.BuyAmount,
			Active:     o.Active,
			CreatedAt:  o.CreatedAt,
		})
	}
	return resp, nil
}

// -------------------- Error mapping --------------------

func toStatus(err error) error {
	switch {
	case errors.Is(err, escrow.ErrInvalidIdentity),
		errors.Is(err, escrow.ErrInvalidAmount),
		errors.Is(err, escrow.ErrInvalidAsset):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, escrow.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, escrow.ErrNotOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, escrow.ErrInsufficientBalance),
		errors.Is(err, escrow.ErrOrderNotActive),
		errors.Is(err, escrow.ErrSellerIsBuyer):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
