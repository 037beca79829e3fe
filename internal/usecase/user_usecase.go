package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
	"talent-portal-backend/pkg/validation"
)

type userUsecase struct {
	users    domain.UserRepository
	skills   domain.SkillRepository
	lookup   domain.AddressLookup
	validate *validator.Validate
}

func NewUserUsecase(
	users domain.UserRepository,
	skills domain.SkillRepository,
	lookup domain.AddressLookup,
	validate *validator.Validate,
) domain.UserUsecase {
	return &userUsecase{
		users:    users,
		skills:   skills,
		lookup:   lookup,
		validate: validate,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.users.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, id int64, input domain.UpdateProfileInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest(strings.Join(msgs, "; "))
	}

	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.CEP != nil {
		user.CEP = *input.CEP
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}

	var skillIDs []int64
	replaceSkills := input.SkillIDs != nil
	if replaceSkills {
		skillIDs = dedupe(*input.SkillIDs)
		if len(skillIDs) > 0 {
			count, err := u.skills.CountByIDs(ctx, skillIDs)
			if err != nil {
				return nil, err
			}
			if count != int64(len(skillIDs)) {
				return nil, apperror.BadRequest("Skills: One or more skills do not exist")
			}
		}
	}

	var educations []domain.Education
	replaceEducations := input.Educations != nil
	if replaceEducations {
		educations = make([]domain.Education, 0, len(*input.Educations))
		for _, e := range *input.Educations {
			educations = append(educations, domain.Education{
				CourseName:  e.CourseName,
				Institution: e.Institution,
				ConcludedAt: e.ConcludedAt,
			})
		}
	}

	if err := u.users.UpdateProfile(ctx, user, skillIDs, educations, replaceSkills, replaceEducations); err != nil {
		return nil, err
	}

	return u.users.GetWithRelations(ctx, id)
}

func (u *userUsecase) DeleteAccount(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

// LookupAddress resolves a CEP for the address form. Digits are extracted
// first so formatted codes ("01310-100") work too.
func (u *userUsecase) LookupAddress(ctx context.Context, cep string) (*domain.Address, error) {
	cleaned := digitsOnly(cep)
	if len(cleaned) != 8 {
		return nil, apperror.New(http.StatusBadRequest, domain.ErrCEPInvalid.Error(), domain.ErrCEPInvalid)
	}

	addr, err := u.lookup.Lookup(ctx, cleaned)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCEPNotFound):
			return nil, apperror.New(http.StatusNotFound, domain.ErrCEPNotFound.Error(), err)
		case errors.Is(err, domain.ErrCEPTimeout):
			return nil, apperror.New(http.StatusRequestTimeout, domain.ErrCEPTimeout.Error(), err)
		default:
			return nil, apperror.BadRequest("Postal code lookup failed")
		}
	}
	return addr, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
