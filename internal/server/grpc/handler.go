package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophvault/internal/proto"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	user, err := s.users.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{UserId: user.ID, Username: user.UserName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	s.logger.Info(ctx, "Login request", "username", req.GetUsername())

	res, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{
		Token:     res.Token,
		ExpiresAt: timestamppb.New(res.ExpiresAt),
		UserId:    res.UserID,
		Username:  res.Username,
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.ChangePassword(ctx, id, req.GetOldPassword(), req.GetNewPassword()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetProfile(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.GetProfileResponse{
		UserId:    user.ID,
		Username:  user.UserName,
		CreatedAt: timestamppb.New(user.CreatedAt),
	}
	if user.LastLoginAt != nil {
		resp.LastLoginAt = timestamppb.New(*user.LastLoginAt)
	}
	return resp, nil
}

func (s *GRPCServer) CreateSecret(ctx context.Context, req *pb.CreateSecretRequest) (*pb.CreateSecretResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	recordID, err := s.secrets.Create(ctx, id, models.SecretInput{
		Name:     req.GetName(),
		Value:    req.GetValue(),
		Notes:    req.Notes,
		Category: req.Category,
		URL:      req.Url,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CreateSecretResponse{Id: recordID}, nil
}

func (s *GRPCServer) ListSecrets(ctx context.Context, req *pb.ListSecretsRequest) (*pb.ListSecretsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.secrets.List(ctx, id, models.SecretFilter{Category: req.GetCategory(), Search: req.GetSearch()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListSecretsResponse{Secrets: make([]*pb.SecretSummary, 0, len(items))}
	for _, it := range items {
		resp.Secrets = append(resp.Secrets, &pb.SecretSummary{
			Id:        it.ID,
			Name:      it.Name,
			Category:  it.Category,
			Url:       it.URL,
			HasNotes:  it.HasNotes,
			CreatedAt: timestamppb.New(it.CreatedAt),
			UpdatedAt: timestamppb.New(it.UpdatedAt),
		})
	}
	return resp, nil
}

func (s *GRPCServer) GetSecret(ctx context.Context, req *pb.GetSecretRequest) (*pb.Secret, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.secrets.Get(ctx, id, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.Secret{
		Id:        d.ID,
		Name:      d.Name,
		Value:     d.Value,
		Notes:     d.Notes,
		Category:  d.Category,
		Url:       d.URL,
		CreatedAt: timestamppb.New(d.CreatedAt),
		UpdatedAt: timestamppb.New(d.UpdatedAt),
	}, nil
}

func (s *GRPCServer) UpdateSecret(ctx context.Context, req *pb.UpdateSecretRequest) (*pb.UpdateSecretResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	patch := models.SecretPatch{
		Name:     req.Name,
		Value:    req.Value,
		Notes:    req.Notes,
		Category: req.Category,
		URL:      req.Url,
	}
	if err := s.secrets.Update(ctx, id, req.GetId(), patch); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateSecretResponse{}, nil
}

func (s *GRPCServer) DeleteSecret(ctx context.Context, req *pb.DeleteSecretRequest) (*pb.DeleteSecretResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.secrets.Delete(ctx, id, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteSecretResponse{}, nil
}
