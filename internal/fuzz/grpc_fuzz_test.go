package fuzz

import (
	"context"
	"testing"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	grpcserver "github.com/Billy-Davies-2/futsal-team-maker/internal/grpc"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/session"
	pb "github.com/Billy-Davies-2/futsal-team-maker/proto/teams/v1"
)

func newServer(t *testing.T) (*grpcserver.Server, string) {
	t.Helper()
	manager := session.NewManager(dal.NewMemoryDAL(), balancer.New(balancer.WithSeed(1)))
	server := grpcserver.NewServer(manager)

	created, err := server.CreateSession(context.Background(), &pb.CreateSessionRequest{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return server, created.GetSession().GetId()
}

// FuzzGRPCImportRoster fuzzes the gRPC ImportRoster endpoint
func FuzzGRPCImportRoster(f *testing.F) {
	// Seed corpus
	f.Add("1. Ann\n2. Ben\n3. Cat")
	f.Add("")
	f.Add("1.\n2. \n\n3.Dan\nnot a line")
	f.Add(string(make([]byte, 10000)))

	f.Fuzz(func(t *testing.T, text string) {
		server, id := newServer(t)
		ctx := context.Background()

		reply, err := server.ImportRoster(ctx, &pb.ImportRosterRequest{SessionId: id, Text: text})
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if int(reply.GetCount()) != len(reply.GetSession().GetRoster()) {
			t.Fatalf("count %d does not match roster of %d", reply.GetCount(), len(reply.GetSession().GetRoster()))
		}

		// Balancing any imported roster keeps every participant exactly once
		balanced, err := server.Balance(ctx, &pb.SessionRequest{SessionId: id})
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if got := grpcserver.PbToModelsSession(balanced.GetSession()).Assignment.Size(); got != int(reply.GetCount()) {
			t.Fatalf("assignment holds %d participants, want %d", got, reply.GetCount())
		}
	})
}

// FuzzGRPCSetTeamCount fuzzes the gRPC SetTeamCount endpoint
func FuzzGRPCSetTeamCount(f *testing.F) {
	// Seed corpus
	f.Add(int32(2))
	f.Add(int32(0))
	f.Add(int32(-5))
	f.Add(int32(1000))

	f.Fuzz(func(t *testing.T, count int32) {
		server, id := newServer(t)
		ctx := context.Background()

		_, err := server.SetTeamCount(ctx, &pb.SetTeamCountRequest{SessionId: id, Count: count})
		valid := count >= 1 && int(count) <= models.MaxTeamCount
		if valid != (err == nil) {
			t.Fatalf("count %d: unexpected error state %v", count, err)
		}

		// Should not panic
		_, _ = server.Balance(ctx, &pb.SessionRequest{SessionId: id})
		_, _ = server.Export(ctx, &pb.SessionRequest{SessionId: id})
	})
}

// FuzzGRPCSessionID fuzzes session lookups with arbitrary identifiers
func FuzzGRPCSessionID(f *testing.F) {
	// Seed corpus
	f.Add("")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("../../etc/passwd")

	f.Fuzz(func(t *testing.T, id string) {
		server, _ := newServer(t)
		ctx := context.Background()
		req := &pb.SessionRequest{SessionId: id}

		_, _ = server.GetSession(ctx, req)
		_, _ = server.Balance(ctx, req)
		_, _ = server.Randomize(ctx, req)
		_, _ = server.Undo(ctx, req)
		_, _ = server.Reset(ctx, req)
		_, _ = server.Export(ctx, req)
	})
}
