package domain

import "context"

type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	// CountByIDs returns how many of the given ids exist. Used to reject
	// payloads referencing unknown skills before opening a transaction.
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
}
