package usecase

import (
	"context"

	"talent-portal-backend/internal/domain"
)

type skillUsecase struct {
	skills domain.SkillRepository
}

func NewSkillUsecase(skills domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skills: skills}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return u.skills.Fetch(ctx)
}
