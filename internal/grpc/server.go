package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/session"
	pb "github.com/Billy-Davies-2/futsal-team-maker/proto/teams/v1"
)

// Server implements the gRPC TeamService
type Server struct {
	pb.UnimplementedTeamServiceServer
	sessions *session.Manager
}

// NewServer creates a new gRPC server
func NewServer(m *session.Manager) *Server {
	return &Server{sessions: m}
}

// toStatus maps domain errors to gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidTeamCount),
		errors.Is(err, models.ErrInvalidRosterSize),
		errors.Is(err, models.ErrEmptyUpdate),
		errors.Is(err, models.ErrDuplicateParticipant):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrParticipantNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, dal.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func requireSession(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "session_id is required")
	}
	return nil
}

// CreateSession starts a new session
func (s *Server) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.SessionReply, error) {
	opts := session.CreateOptions{
		TeamCount:  int(req.GetTeamCount()),
		RosterText: req.GetRoster(),
	}
	if req.RosterSize != nil {
		n := int(req.GetRosterSize())
		opts.RosterSize = &n
	}

	sess, err := s.sessions.Create(ctx, opts)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: true}, nil
}

// GetSession returns the session snapshot
func (s *Server) GetSession(ctx context.Context, req *pb.SessionRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess)}, nil
}

// Balance deals the roster into balanced teams
func (s *Server) Balance(ctx context.Context, req *pb.SessionRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Balance(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: true}, nil
}

// Randomize shuffles the roster unless the randomize-lock is set
func (s *Server) Randomize(ctx context.Context, req *pb.SessionRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, applied, err := s.sessions.Randomize(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: applied}, nil
}

// Undo restores the previous assignment
func (s *Server) Undo(ctx context.Context, req *pb.SessionRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, applied, err := s.sessions.Undo(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: applied}, nil
}

// Reset sets every rating to neutral and clears the teams
func (s *Server) Reset(ctx context.Context, req *pb.SessionRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Reset(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: true}, nil
}

// ImportRoster replaces the roster from ordinal-dot text
func (s *Server) ImportRoster(ctx context.Context, req *pb.ImportRosterRequest) (*pb.ImportRosterReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, n, err := s.sessions.Import(ctx, req.GetSessionId(), req.GetText())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ImportRosterReply{Session: modelsToPbSession(sess), Count: int32(n)}, nil
}

// SetTeamCount changes the team count for the next balance
func (s *Server) SetTeamCount(ctx context.Context, req *pb.SetTeamCountRequest) (*pb.SessionReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	sess, err := s.sessions.SetTeamCount(ctx, req.GetSessionId(), int(req.GetCount()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionReply{Session: modelsToPbSession(sess), Applied: true}, nil
}

// Export renders the current assignment as text
func (s *Server) Export(ctx context.Context, req *pb.SessionRequest) (*pb.ExportReply, error) {
	if err := requireSession(req.GetSessionId()); err != nil {
		return nil, err
	}
	text, err := s.sessions.Export(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExportReply{Text: text}, nil
}

// UnaryLogger logs every call with its status code and latency
func UnaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK, codes.InvalidArgument, codes.NotFound:
		logger.Debug("gRPC call", attrs...)
	default:
		logger.Warn("gRPC call failed", append(attrs, "error", err)...)
	}
	return resp, err
}
