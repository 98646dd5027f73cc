package grpc

import (
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	pb "github.com/Billy-Davies-2/futsal-team-maker/proto/teams/v1"
)

func modelsToPbParticipant(p models.Participant) *pb.Participant {
	return &pb.Participant{
		Id:     p.ID,
		Name:   p.Name,
		Rating: string(p.Rating),
	}
}

func pbToModelsParticipant(p *pb.Participant) models.Participant {
	return models.Participant{
		ID:     p.GetId(),
		Name:   p.GetName(),
		Rating: models.Rating(p.GetRating()),
	}
}

func modelsToPbAssignment(a models.Assignment) []*pb.Team {
	if a == nil {
		return nil
	}
	teams := make([]*pb.Team, len(a))
	for i, team := range a {
		members := make([]*pb.Participant, len(team))
		for j, p := range team {
			members[j] = modelsToPbParticipant(p)
		}
		teams[i] = &pb.Team{Participants: members}
	}
	return teams
}

// pbToModelsAssignment returns nil for an empty list, matching a session
// without an active assignment
func pbToModelsAssignment(teams []*pb.Team) models.Assignment {
	if len(teams) == 0 {
		return nil
	}
	a := make(models.Assignment, len(teams))
	for i, t := range teams {
		a[i] = models.Team{}
		for _, p := range t.GetParticipants() {
			a[i] = append(a[i], pbToModelsParticipant(p))
		}
	}
	return a
}

func modelsToPbSession(s *models.Session) *pb.Session {
	roster := make([]*pb.Participant, len(s.Roster))
	for i, p := range s.Roster {
		roster[i] = modelsToPbParticipant(p)
	}

	return &pb.Session{
		Id:              s.ID,
		Roster:          roster,
		TeamCount:       int32(s.TeamCount),
		Assignment:      modelsToPbAssignment(s.Assignment),
		History:         modelsToPbAssignment(s.History),
		RandomizeLocked: s.RandomizeLocked,
		Message:         s.Message,
		ShowDetails:     s.ShowDetails,
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// PbToModelsSession converts a session received over gRPC
func PbToModelsSession(s *pb.Session) *models.Session {
	roster := make([]models.Participant, len(s.GetRoster()))
	for i, p := range s.GetRoster() {
		roster[i] = pbToModelsParticipant(p)
	}

	return &models.Session{
		ID:              s.GetId(),
		Roster:          roster,
		TeamCount:       int(s.GetTeamCount()),
		Assignment:      pbToModelsAssignment(s.GetAssignment()),
		History:         pbToModelsAssignment(s.GetHistory()),
		RandomizeLocked: s.GetRandomizeLocked(),
		Message:         s.GetMessage(),
		ShowDetails:     s.GetShowDetails(),
		Version:         s.GetVersion(),
		CreatedAt:       s.GetCreatedAt(),
		UpdatedAt:       s.GetUpdatedAt(),
	}
}
