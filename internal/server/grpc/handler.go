package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.UserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.sessions.Register(ctx, services.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return userResponse(user), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.sessions.Login(ctx, services.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		// unknown account and wrong password look the same to the caller
		if errors.Is(err, common.ErrorNotFound) {
			err = common.ErrInvalidCredentials
		}
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{Id: res.UserID, Secret: res.Secret, OtpauthUrl: res.EnrollmentURI}, nil
}

func (s *GRPCServer) CompleteTwoFactor(ctx context.Context, req *pb.TwoFactorRequest) (*pb.TokenResponse, error) {

	pair, err := s.sessions.CompleteTwoFactor(ctx, services.TwoFactorInput{UserID: req.GetId(), Code: req.GetCode(), Secret: req.GetSecret()})
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return tokenResponse(pair), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {

	pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return tokenResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.MessageResponse, error) {

	msg, err := s.sessions.Logout(ctx, req.RefreshToken)
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return &pb.MessageResponse{Message: msg}, nil
}

func (s *GRPCServer) CurrentUser(ctx context.Context, req *pb.CurrentUserRequest) (*pb.UserResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.sessions.User(ctx, userID)
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return userResponse(user), nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {

	msg, err := s.resets.ForgotPassword(ctx, services.ForgotInput{Email: req.Email})
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return &pb.MessageResponse{Message: msg}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {

	msg, err := s.resets.ResetPassword(ctx, services.ResetInput{
		Token:           req.Token,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		s.logFailure(ctx, err)
		return nil, toStatus(err)
	}

	return &pb.MessageResponse{Message: msg}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// logFailure keeps the full error chain in the log; the client only sees
// the mapped status.
func (s *GRPCServer) logFailure(ctx context.Context, err error) {
	if common.IsKnown(err) && !errors.Is(err, common.ErrDependency) {
		s.logger.Info(ctx, "request rejected", "error", err.Error())
		return
	}
	s.logger.Error(ctx, "request failed", "error", err.Error())
}

func userResponse(u *models.UserPublic) *pb.UserResponse {
	return &pb.UserResponse{
		Id:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

func tokenResponse(p *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		RefreshExpiresAt: timestamppb.New(p.RefreshExpiresAt),
	}
}
