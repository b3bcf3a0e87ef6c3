package snapshotting

// Acessores para os registros brutos validados (forma original da API,
// chaves em camelCase). A normalização para o documento tipado acontece
// aqui, não no gate de validação.

func rawString(record map[string]interface{}, key string) string {
	v, _ := record[key].(string)
	return v
}

func rawBool(record map[string]interface{}, key string) bool {
	v, _ := record[key].(bool)
	return v
}

// rawInt64 tolera as representações numéricas que o decoder de JSON
// produz (float64) e as tags internas adicionadas durante o fetch (int64)
func rawInt64(record map[string]interface{}, key string) int64 {
	switch v := record[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func rawStringSlice(record map[string]interface{}, key string) []string {
	raw, ok := record[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func rawMap(record map[string]interface{}, key string) map[string]interface{} {
	v, _ := record[key].(map[string]interface{})
	return v
}

// pivotValues extrai a lista de URNs de pivot de uma linha de analytics
func pivotValues(row map[string]interface{}) []string {
	return rawStringSlice(row, "pivotValues")
}

// nestedAmount lê o campo amount de um objeto de orçamento ({amount, currencyCode})
func nestedAmount(record map[string]interface{}, key string) (amount string, currency string) {
	budget := rawMap(record, key)
	if budget == nil {
		return "", ""
	}
	return rawString(budget, "amount"), rawString(budget, "currencyCode")
}
