package game

import (
	"fmt"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/announcer"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func arenaToProto(def arena.Definition) *stellarduelv1.Arena {
	anomalies := make([]string, 0, len(def.AnomalyKinds))
	for _, kind := range def.AnomalyKinds {
		anomalies = append(anomalies, string(kind))
	}
	hazards := make([]string, 0, len(def.Hazards))
	for _, kind := range def.Hazards {
		hazards = append(hazards, string(kind))
	}
	return &stellarduelv1.Arena{
		Id:                   int32(def.ID),
		Key:                  def.Key,
		Name:                 def.Name,
		Subtitle:             def.Subtitle,
		Description:          def.Description,
		BackgroundColor:      def.Background,
		AccentColor:          def.Accent,
		SecondaryAccentColor: def.Accent2,
		AnomalyKinds:         anomalies,
		MaxAnomalies:         int32(def.MaxAnomalies),
		MaxAsteroids:         int32(def.MaxAsteroids),
		Hazards:              hazards,
	}
}

func matchToProto(rec storage.MatchRecord) *stellarduelv1.Match {
	out := &stellarduelv1.Match{
		Id:          rec.ID,
		ArenaKey:    rec.ArenaKey,
		Difficulty:  difficultyToProto(rec.Difficulty),
		Seed:        rec.Seed,
		Phase:       phaseToProto(rec.Status),
		PlayerScore: int32(rec.PlayerScore),
		AiScore:     int32(rec.AIScore),
		Combo:       int32(rec.Combo),
		Winner:      winnerToProto(rec.Winner),
		CreatedAt:   timestamppb.New(rec.CreatedAt),
	}
	if rec.CompletedAt != nil {
		out.CompletedAt = timestamppb.New(*rec.CompletedAt)
	}
	return out
}

func snapshotToProto(snap match.Snapshot) *stellarduelv1.MatchSnapshot {
	return &stellarduelv1.MatchSnapshot{
		MatchId:      snap.ID,
		Phase:        phaseToProto(snap.Phase),
		Clock:        snap.Clock,
		Tick:         snap.Tick,
		Combo:        int32(snap.Combo),
		Winner:       winnerToProto(snap.Winner),
		Player:       shipStateToProto(snap.Player),
		Opponent:     shipStateToProto(snap.Opponent),
		BallPosition: vectorToProto(snap.BallPos),
		BallVelocity: vectorToProto(snap.BallVel),
		EventCount:   int64(snap.EventCount),
	}
}

func shipStateToProto(state match.ShipState) *stellarduelv1.ShipState {
	return &stellarduelv1.ShipState{
		Position: vectorToProto(state.Pos),
		Velocity: vectorToProto(state.Vel),
		Angle:    state.Angle,
		Boost:    state.Boost,
		Boosting: state.Boosting,
		Score:    int32(state.Score),
	}
}

func vectorToProto(v geom.Vec2) *stellarduelv1.Vector {
	return &stellarduelv1.Vector{X: v.X, Y: v.Y}
}

func eventToProto(evt storage.EventRecord, locale string) *stellarduelv1.MatchEvent {
	out := &stellarduelv1.MatchEvent{
		Seq:     evt.Seq,
		Tick:    evt.Tick,
		Type:    string(evt.Type),
		Payload: evt.Payload,
	}
	if evt.MessageKey != "" {
		out.Message = announcer.Line(locale, evt.MessageKey, evt.Variant)
	}
	return out
}

func arenaRecordToProto(rec storage.ArenaRecord) *stellarduelv1.ArenaRecord {
	return &stellarduelv1.ArenaRecord{
		ArenaKey:       rec.ArenaKey,
		BestTotalGoals: int32(rec.BestTotalGoals),
		UpdatedAt:      timestamppb.New(rec.UpdatedAt),
	}
}

func difficultyToProto(d match.Difficulty) stellarduelv1.Difficulty {
	switch d {
	case match.DifficultyEasy:
		return stellarduelv1.Difficulty_DIFFICULTY_EASY
	case match.DifficultyMedium:
		return stellarduelv1.Difficulty_DIFFICULTY_MEDIUM
	case match.DifficultyHard:
		return stellarduelv1.Difficulty_DIFFICULTY_HARD
	case match.DifficultyElite:
		return stellarduelv1.Difficulty_DIFFICULTY_ELITE
	default:
		return stellarduelv1.Difficulty_DIFFICULTY_UNSPECIFIED
	}
}

func difficultyFromProto(d stellarduelv1.Difficulty) (match.Difficulty, error) {
	switch d {
	case stellarduelv1.Difficulty_DIFFICULTY_EASY:
		return match.DifficultyEasy, nil
	case stellarduelv1.Difficulty_DIFFICULTY_MEDIUM:
		return match.DifficultyMedium, nil
	case stellarduelv1.Difficulty_DIFFICULTY_HARD:
		return match.DifficultyHard, nil
	case stellarduelv1.Difficulty_DIFFICULTY_ELITE:
		return match.DifficultyElite, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %v", d)
	}
}

func phaseToProto(p match.Phase) stellarduelv1.MatchPhase {
	switch p {
	case match.PhasePending:
		return stellarduelv1.MatchPhase_MATCH_PHASE_PENDING
	case match.PhasePlaying:
		return stellarduelv1.MatchPhase_MATCH_PHASE_PLAYING
	case match.PhaseGoalReset:
		return stellarduelv1.MatchPhase_MATCH_PHASE_GOAL_RESET
	case match.PhaseComplete:
		return stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE
	default:
		return stellarduelv1.MatchPhase_MATCH_PHASE_UNSPECIFIED
	}
}

func winnerToProto(w match.Winner) stellarduelv1.MatchWinner {
	switch w {
	case match.WinnerPlayer:
		return stellarduelv1.MatchWinner_MATCH_WINNER_PLAYER
	case match.WinnerAI:
		return stellarduelv1.MatchWinner_MATCH_WINNER_AI
	case match.WinnerDraw:
		return stellarduelv1.MatchWinner_MATCH_WINNER_DRAW
	default:
		return stellarduelv1.MatchWinner_MATCH_WINNER_UNSPECIFIED
	}
}
