package roster

import (
	"errors"
	"strings"
	"time"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/utils"
)

var ErrScheduleNotFound = errors.New("escala não encontrada")

// validateScheduleInput roda as regras na ordem fixa título → setor →
// presença das datas → formato → ordem das datas, e devolve apenas a primeira
// violação. As mensagens são exibidas diretamente para o usuário.
func validateScheduleInput(input *domain.ScheduleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return errors.New("o título da escala é obrigatório")
	}

	if strings.TrimSpace(input.LocationID) == "" {
		return errors.New("o setor da escala é obrigatório")
	}

	if input.StartDate == "" || input.EndDate == "" {
		return errors.New("a data de início e a data de término são obrigatórias")
	}

	startDate := utils.TruncateDate(input.StartDate)
	endDate := utils.TruncateDate(input.EndDate)

	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return errors.New("a data de início é inválida")
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return errors.New("a data de término é inválida")
	}

	if startDate > endDate {
		return errors.New("a data de início não pode ser posterior à data de término")
	}

	return nil
}

func validateExtraShiftInput(input *domain.ExtraShiftInput) error {
	if input.Date == "" {
		return errors.New("a data do plantão extra é obrigatória")
	}
	if _, err := time.Parse("2006-01-02", utils.TruncateDate(input.Date)); err != nil {
		return errors.New("a data do plantão extra é inválida")
	}

	if input.StartTime == "" || input.EndTime == "" {
		return errors.New("o horário de início e o horário de término são obrigatórios")
	}
	if _, err := time.Parse("15:04", input.StartTime); err != nil {
		return errors.New("o horário de início é inválido")
	}
	if _, err := time.Parse("15:04", input.EndTime); err != nil {
		return errors.New("o horário de término é inválido")
	}
	if input.StartTime == input.EndTime {
		return errors.New("o horário de início e o horário de término não podem ser iguais")
	}

	if input.RequiredCount < 1 {
		return errors.New("a quantidade de profissionais deve ser no mínimo 1")
	}

	return nil
}
