package impl

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"time"

	"livewell/config"
	deliverycontext "livewell/internal/delivery/context"
	"livewell/internal/domain/action"
	"livewell/internal/domain/entity"
	domainerrors "livewell/internal/domain/errors"
	"livewell/internal/domain/repository"
	"livewell/internal/domain/service"
	"livewell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// outcomeErrorKey carries a rejected invocation back to the model.
const outcomeErrorKey = "error"

type chatService struct {
	snapshots       usecase.SnapshotUsecase
	model           service.LanguageModel
	txManager       repository.TransactionManager
	medicationRepo  repository.MedicationRepository
	vaccinationRepo repository.VaccinationRepository

	defaultFrequencyTime string
	location             *time.Location
	now                  func() time.Time
	logger               *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Snapshots       usecase.SnapshotUsecase
	Model           service.LanguageModel
	TxManager       repository.TransactionManager
	MedicationRepo  repository.MedicationRepository
	VaccinationRepo repository.VaccinationRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewChatService creates the assistant turn use case.
func NewChatService(params ChatServiceParams) (usecase.ChatUsecase, error) {
	location, err := time.LoadLocation(params.Config.Chat.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid chat time zone %q", params.Config.Chat.TimeZone)
	}

	return &chatService{
		snapshots:            params.Snapshots,
		model:                params.Model,
		txManager:            params.TxManager,
		medicationRepo:       params.MedicationRepo,
		vaccinationRepo:      params.VaccinationRepo,
		defaultFrequencyTime: params.Config.Chat.DefaultFrequencyTime,
		location:             location,
		now:                  time.Now,
		logger:               params.Logger,
	}, nil
}

func (s *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Converse implements usecase.ChatUsecase.
func (s *chatService) Converse(ctx context.Context, claims *entity.ClaimSet, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		userID, err := claims.UserID()
		if err != nil {
			yield("", domainerrors.ErrAuthentication.WithDetails(err.Error()))

			return
		}

		snapshot, err := s.snapshots.GetSnapshot(ctx, userID)
		if err != nil {
			yield("", domainerrors.NewUpstreamError("user data", err))

			return
		}

		instruction, err := withSnapshot(chatPersona, snapshot)
		if err != nil {
			yield("", domainerrors.ErrInternalError.WithDetails(err.Error()))

			return
		}

		userContent := service.Content{
			Role:  service.RoleUser,
			Parts: []service.Part{{Text: message}},
		}

		var (
			reply strings.Builder
			call  *service.FunctionCall
		)

		first := &service.GenerateRequest{
			SystemInstruction: instruction,
			Contents:          []service.Content{userContent},
			Tools:             action.Catalogue(),
		}
		for chunk, err := range s.model.GenerateStream(ctx, first) {
			if err != nil {
				yield("", domainerrors.NewUpstreamError("language model", err))

				return
			}

			if chunk.Text != "" {
				reply.WriteString(chunk.Text)
				if !yield(chunk.Text, nil) {
					return
				}
			}

			if call == nil && len(chunk.FunctionCalls) > 0 {
				c := chunk.FunctionCalls[0]
				call = &c
			}
		}

		if call == nil {
			return
		}

		outcome, err := s.dispatch(ctx, userID, call)
		if err != nil {
			yield("", err)

			return
		}

		modelParts := make([]service.Part, 0, 2)
		if reply.Len() > 0 {
			modelParts = append(modelParts, service.Part{Text: reply.String()})
		}
		modelParts = append(modelParts, service.Part{FunctionCall: call})

		final := &service.GenerateRequest{
			SystemInstruction: instruction,
			Contents: []service.Content{
				userContent,
				{Role: service.RoleModel, Parts: modelParts},
				{Role: service.RoleUser, Parts: []service.Part{{
					FunctionResponse: &service.FunctionResponse{Name: call.Name, Response: outcome},
				}}},
			},
		}
		for chunk, err := range s.model.GenerateStream(ctx, final) {
			if err != nil {
				yield("", domainerrors.NewUpstreamError("language model", err))

				return
			}

			if chunk.Text == "" {
				continue
			}

			if !yield(chunk.Text, nil) {
				return
			}
		}
	}
}

// dispatch runs the invocation and builds the outcome reported to the model.
// Rejected arguments become an outcome; record store failures end the turn.
func (s *chatService) dispatch(ctx context.Context, userID uuid.UUID, call *service.FunctionCall) (map[string]any, error) {
	logger := s.log(ctx).With(slog.String("action", call.Name), slog.String("user_id", userID.String()))

	cmd, err := action.Parse(action.Invocation{Name: call.Name, Args: call.Args})
	if err != nil {
		if !domainerrors.IsValidationFailure(err) {
			return nil, err
		}

		logger.Warn("action rejected", slog.Any("error", err))

		return map[string]any{outcomeErrorKey: err.Error()}, nil
	}

	if err := s.execute(ctx, userID, cmd); err != nil {
		logger.Error("action failed", slog.Any("error", err))

		return nil, err
	}

	decl, _ := action.Lookup(call.Name)
	logger.Info("action executed")

	return map[string]any{call.Name: decl.Confirmation()}, nil
}

func (s *chatService) execute(ctx context.Context, userID uuid.UUID, cmd action.Command) error {
	switch c := cmd.(type) {
	case *action.MedicationCreate:
		med := c.ToEntity(userID, s.today(), s.defaultFrequencyTime)

		return recordStoreError(s.medicationRepo.Create(ctx, med), "")

	case *action.MedicationUpdate:
		err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			repo := txRepoFactory.NewMedicationRepository()

			med, err := repo.FindByUserAndID(ctx, userID, c.MedID)
			if err != nil {
				return err
			}

			c.ApplyTo(med)

			return repo.Update(ctx, userID, c.MedID, med)
		})

		return recordStoreError(err, c.MedID)

	case *action.MedicationDelete:
		return recordStoreError(s.medicationRepo.Delete(ctx, userID, c.MedID), c.MedID)

	case *action.VaccinationCreate:
		return recordStoreError(s.vaccinationRepo.Create(ctx, c.ToEntity(userID)), "")

	case *action.VaccinationUpdate:
		err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			repo := txRepoFactory.NewVaccinationRepository()

			vac, err := repo.FindByUserAndID(ctx, userID, c.VacID)
			if err != nil {
				return err
			}

			c.ApplyTo(vac)

			return repo.Update(ctx, userID, c.VacID, vac)
		})

		return recordStoreError(err, c.VacID)

	case *action.VaccinationDelete:
		return recordStoreError(s.vaccinationRepo.Delete(ctx, userID, c.VacID), c.VacID)

	default:
		return domainerrors.ErrInternalError.WithDetails("unhandled action " + cmd.ActionName())
	}
}

// today is the current date in the configured time zone.
func (s *chatService) today() string {
	return s.now().In(s.location).Format(time.DateOnly)
}

func recordStoreError(err error, recordID string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrMedicationNotFound):
		return domainerrors.ErrMedicationNotFound.WithDetails("med_id " + recordID)
	case errors.Is(err, repository.ErrVaccinationNotFound):
		return domainerrors.ErrVaccinationNotFound.WithDetails("vac_id " + recordID)
	default:
		return domainerrors.NewUpstreamError("record store", err)
	}
}
