package service

import (
	"errors"
	"time"

	"bookmore/internal/api/dto"
	"bookmore/internal/api/models"
	"bookmore/internal/api/repository"
	"bookmore/internal/apperrors"
	"bookmore/internal/security"

	"gorm.io/gorm"
)

// TokenIssuer signs access tokens bound to a user identity.
type TokenIssuer interface {
	Generate(userID int64, email string) (string, error)
}

type UserService interface {
	Join(req *dto.UserJoinRequest) (*dto.UserJoinResponse, error)
	Login(req *dto.UserLoginRequest) (*dto.UserLoginResponse, error)
	Verify(callerEmail string) (*dto.UserResponse, error)
	InfoUpdate(callerEmail string, targetID int64, req *dto.UserUpdateRequest) (*dto.UserResponse, error)
	Delete(callerEmail string, targetID int64) (*dto.MessageResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewUserService(userRepo repository.UserRepository, tokens TokenIssuer) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Join registers a new account after checking email and nickname uniqueness.
func (s *userService) Join(req *dto.UserJoinRequest) (*dto.UserJoinResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.New(apperrors.DuplicatedEmail)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByNickname(req.Nickname); err == nil {
		return nil, apperrors.New(apperrors.DuplicatedNickname)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: hashed,
	}
	if req.Birth != "" {
		birth, err := time.Parse(time.DateOnly, req.Birth)
		if err != nil {
			return nil, err
		}
		user.Birth = birth
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return &dto.UserJoinResponse{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
	}, nil
}

// Login verifies credentials and issues a signed token.
func (s *userService) Login(req *dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// level the timing with a real password check
			security.DummyVerify(req.Password)
			return nil, apperrors.New(apperrors.UserNotFound)
		}
		return nil, err
	}

	if err := security.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, apperrors.New(apperrors.InvalidPassword)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.UserLoginResponse{Token: token}, nil
}

// Verify re-resolves the caller and returns the public profile, confirming a
// previously issued token still belongs to an existing account.
func (s *userService) Verify(callerEmail string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.UserNotFound)
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

// InfoUpdate applies a partial profile update after the ownership check.
// Absent fields are left unchanged.
func (s *userService) InfoUpdate(callerEmail string, targetID int64, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	user, err := s.resolveOwner(callerEmail, targetID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil && *req.Nickname != user.Nickname {
		if other, err := s.userRepo.FindByNickname(*req.Nickname); err == nil && other.ID != user.ID {
			return nil, apperrors.New(apperrors.DuplicatedNickname)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Nickname = *req.Nickname
	}
	if req.Password != nil {
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if req.Birth != nil {
		birth, err := time.Parse(time.DateOnly, *req.Birth)
		if err != nil {
			return nil, err
		}
		user.Birth = birth
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

// Delete removes the account after the ownership check.
func (s *userService) Delete(callerEmail string, targetID int64) (*dto.MessageResponse, error) {
	user, err := s.resolveOwner(callerEmail, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{ID: user.ID, Message: "account deleted"}, nil
}

// resolveOwner re-derives the caller from the token email and rejects the
// request when the resolved id does not match the target.
func (s *userService) resolveOwner(callerEmail string, targetID int64) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.UserNotFound)
		}
		return nil, err
	}
	if user.ID != targetID {
		return nil, apperrors.New(apperrors.InvalidToken)
	}
	return user, nil
}
