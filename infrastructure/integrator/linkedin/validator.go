package linkedin

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// validate é o validador compartilhado do gate. As structs de schema abaixo
// existem só para a checagem de campos obrigatórios: o gate devolve sempre
// os registros BRUTOS que passaram, nunca uma projeção tipada; a
// normalização de nomes (camelCase da API) acontece na montagem do snapshot.
var validate = validator.New()

type accountSchema struct {
	ID     int64  `mapstructure:"id" validate:"required"`
	Name   string `mapstructure:"name" validate:"required"`
	Status string `mapstructure:"status" validate:"required"`
}

type campaignSchema struct {
	ID     int64  `mapstructure:"id" validate:"required"`
	Name   string `mapstructure:"name" validate:"required"`
	Status string `mapstructure:"status" validate:"required"`
}

type creativeSchema struct {
	ID string `mapstructure:"id" validate:"required"`
}

type metricRowSchema struct {
	PivotValues []string    `mapstructure:"pivotValues" validate:"required,min=1"`
	Cost        interface{} `mapstructure:"costInLocalCurrency"`
}

type demographicRowSchema struct {
	PivotValues []string    `mapstructure:"pivotValues" validate:"required,min=1"`
	Cost        interface{} `mapstructure:"costInLocalCurrency"`
}

// ValidateAccounts filtra os registros brutos de conta que não atendem ao
// schema mínimo. Campos desconhecidos são ignorados (compatibilidade com
// adições futuras da API); registro inválido é descartado com warning,
// nunca interrompe o lote.
func ValidateAccounts(raw []map[string]interface{}) []map[string]interface{} {
	return validateEach(raw, "account", func(record map[string]interface{}) error {
		return decodeAndCheck(record, &accountSchema{})
	})
}

func ValidateCampaigns(raw []map[string]interface{}) []map[string]interface{} {
	return validateEach(raw, "campaign", func(record map[string]interface{}) error {
		return decodeAndCheck(record, &campaignSchema{})
	})
}

func ValidateCreatives(raw []map[string]interface{}) []map[string]interface{} {
	return validateEach(raw, "creative", func(record map[string]interface{}) error {
		return decodeAndCheck(record, &creativeSchema{})
	})
}

func ValidateMetricRows(raw []map[string]interface{}) []map[string]interface{} {
	return validateEach(raw, "metric_row", func(record map[string]interface{}) error {
		return decodeAndCheck(record, &metricRowSchema{})
	})
}

func ValidateDemographicRows(raw []map[string]interface{}) []map[string]interface{} {
	return validateEach(raw, "demographic_row", func(record map[string]interface{}) error {
		return decodeAndCheck(record, &demographicRowSchema{})
	})
}

// ValidateDemographics aplica o gate a cada pivot do mapa demográfico
func ValidateDemographics(raw map[string][]map[string]interface{}) map[string][]map[string]interface{} {
	validated := make(map[string][]map[string]interface{}, len(raw))
	for pivot, rows := range raw {
		validated[pivot] = ValidateDemographicRows(rows)
	}
	return validated
}

func validateEach(
	raw []map[string]interface{},
	kind string,
	check func(map[string]interface{}) error,
) []map[string]interface{} {
	valid := make([]map[string]interface{}, 0, len(raw))

	for _, record := range raw {
		if err := check(record); err != nil {
			logrus.WithFields(logrus.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Warn("Registro inválido descartado pelo gate de validação")
			continue
		}
		valid = append(valid, record)
	}

	return valid
}

func decodeAndCheck(record map[string]interface{}, schema interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           schema,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(record); err != nil {
		return err
	}

	return validate.Struct(schema)
}

// CoerceCost converte o campo monetário da API, que pode vir como string,
// número ou null, sempre para float64. Null e vazio viram zero.
func CoerceCost(v interface{}) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		if value == "" {
			return 0
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
