package service

import (
	"context"
	"errors"
	"strings"

	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ValidationError описывает первое нарушенное ограничение входных данных.
// Message отдаётся клиенту в теле ответа как есть.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// createPayload — схема входа операции создания: одно обязательное поле.
type createPayload struct {
	Name string `validate:"required,min=1,max=255"`
}

// ItemService инкапсулирует валидацию и обращения к репозиторию.
type ItemService struct {
	repo     repo.ItemRepository
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{
		repo:     r,
		validate: validator.New(),
		logger:   logger,
	}
}

// List возвращает все элементы.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListAll(ctx)
}

// Create валидирует имя и вставляет новую запись.
// При нарушении схемы возвращает *ValidationError, репозиторий не трогается.
func (s *ItemService) Create(ctx context.Context, name string) (*model.Item, error) {
	name = strings.TrimSpace(name)

	if err := s.validate.Struct(createPayload{Name: name}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ValidationError{Message: constraintMessage(verrs[0])}
		}
		return nil, &ValidationError{Message: "invalid payload"}
	}

	item := &model.Item{Name: name}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Errorw("Create: repository error", "name", name, "error", err)
		return nil, err
	}
	return item, nil
}

// constraintMessage переводит первую ошибку схемы в человекочитаемое сообщение.
func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return `"name" is required`
	case "max":
		return `"name" length must be less than or equal to 255 characters long`
	default:
		return `"name" is invalid`
	}
}
