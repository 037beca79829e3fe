package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/apperror"
	"talent-portal-backend/pkg/auth"
	"talent-portal-backend/pkg/logger"
	"talent-portal-backend/pkg/validation"
)

type authUsecase struct {
	users    domain.UserRepository
	skills   domain.SkillRepository
	lookup   domain.AddressLookup
	notifier domain.Notifier
	tokens   *auth.TokenManager
	validate *validator.Validate
	now      func() time.Time
}

func NewAuthUsecase(
	users domain.UserRepository,
	skills domain.SkillRepository,
	lookup domain.AddressLookup,
	notifier domain.Notifier,
	tokens *auth.TokenManager,
	validate *validator.Validate,
	now func() time.Time,
) domain.AuthUsecase {
	if now == nil {
		now = time.Now
	}
	return &authUsecase{
		users:    users,
		skills:   skills,
		lookup:   lookup,
		notifier: notifier,
		tokens:   tokens,
		validate: validate,
		now:      now,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, apperror.BadRequest(strings.Join(msgs, "; "))
	}

	birth, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil || birth.After(u.now()) {
		return nil, apperror.BadRequest("Birth date: Must be a date in the past")
	}

	skillIDs := dedupe(input.SkillIDs)
	if len(skillIDs) > 0 {
		count, err := u.skills.CountByIDs(ctx, skillIDs)
		if err != nil {
			return nil, err
		}
		if count != int64(len(skillIDs)) {
			return nil, apperror.BadRequest("Skills: One or more skills do not exist")
		}
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCandidate
	}

	user := &domain.User{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
		CEP:       input.CEP,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Role:      role,
	}

	// Prefer the looked-up address; fall back to whatever the client sent
	// when the directory cannot resolve the code.
	if u.lookup != nil {
		if addr, err := u.lookup.Lookup(ctx, input.CEP); err == nil {
			user.Address = addr.Address
			user.City = addr.City
			user.State = addr.State
		} else {
			logger.Log.Warn("address lookup failed, using submitted address",
				"cep", input.CEP, "error", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = string(hash)

	educations := make([]domain.Education, 0, len(input.Educations))
	for _, e := range input.Educations {
		educations = append(educations, domain.Education{
			CourseName:  e.CourseName,
			Institution: e.Institution,
			ConcludedAt: e.ConcludedAt,
		})
	}

	if err := u.users.Create(ctx, user, skillIDs, educations); err != nil {
		return nil, err
	}

	created, err := u.users.GetWithRelations(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		welcome := *created
		go func() {
			if err := u.notifier.SendWelcome(&welcome); err != nil {
				logger.Log.Warn("welcome email failed", "email", welcome.Email, "error", err)
			}
		}()
	}

	return created, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	full, err := u.users.GetWithRelations(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	if full == nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	if u.notifier != nil {
		alert := *full
		at := u.now()
		go func() {
			if err := u.notifier.SendLoginAlert(&alert, at); err != nil {
				logger.Log.Warn("login alert failed", "email", alert.Email, "error", err)
			}
		}()
	}

	return token, full, nil
}

// CurrentUser loads the bare identity row; the auth middleware uses it to
// read the role fresh on every request.
func (u *authUsecase) CurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("User no longer exists")
	}
	return user, nil
}

func (u *authUsecase) Me(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.users.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if err := u.tokens.Revoke(ctx, token); err != nil {
		return apperror.Unauthorized("Invalid token")
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
