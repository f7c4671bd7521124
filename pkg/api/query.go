package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/iudanet/umkmhub/internal/models"
)

// EncodeQuery переводит выборку в параметры строки запроса.
// Фильтры кодируются как колонка=оператор.значение, например name=ilike.kopi.
func EncodeQuery(q models.Query) url.Values {
	v := url.Values{}

	if len(q.Columns) > 0 {
		v.Set(ParamSelect, strings.Join(q.Columns, ","))
	}

	for _, f := range q.Filters {
		v.Add(f.Column, string(f.Op)+"."+f.Value)
	}

	if q.OrderBy != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		v.Set(ParamOrder, q.OrderBy+"."+dir)
	}

	if q.Offset > 0 {
		v.Set(ParamOffset, strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		v.Set(ParamLimit, strconv.Itoa(q.Limit))
	}
	if q.Count {
		v.Set(ParamCount, CountExact)
	}

	return v
}

// DecodeQuery разбирает параметры строки запроса в выборку.
// Имена колонок не проверяются, это делает хранилище по схеме таблицы.
func DecodeQuery(v url.Values) (models.Query, error) {
	var q models.Query

	for key, values := range v {
		switch key {
		case ParamSelect:
			for _, col := range strings.Split(v.Get(ParamSelect), ",") {
				if col = strings.TrimSpace(col); col != "" && col != "*" {
					q.Columns = append(q.Columns, col)
				}
			}
		case ParamOrder:
			col, dir, _ := strings.Cut(v.Get(ParamOrder), ".")
			switch dir {
			case "", "asc":
			case "desc":
				q.Desc = true
			default:
				return q, fmt.Errorf("invalid order direction %q", dir)
			}
			q.OrderBy = col
		case ParamOffset:
			n, err := strconv.Atoi(v.Get(ParamOffset))
			if err != nil || n < 0 {
				return q, fmt.Errorf("invalid offset %q", v.Get(ParamOffset))
			}
			q.Offset = n
		case ParamLimit:
			n, err := strconv.Atoi(v.Get(ParamLimit))
			if err != nil || n < 0 {
				return q, fmt.Errorf("invalid limit %q", v.Get(ParamLimit))
			}
			q.Limit = n
		case ParamCount:
			if v.Get(ParamCount) != CountExact {
				return q, fmt.Errorf("unsupported count mode %q", v.Get(ParamCount))
			}
			q.Count = true
		default:
			for _, raw := range values {
				op, value, ok := strings.Cut(raw, ".")
				if !ok {
					return q, fmt.Errorf("invalid filter %s=%s", key, raw)
				}
				switch models.FilterOp(op) {
				case models.OpEq, models.OpILike:
				default:
					return q, fmt.Errorf("unsupported filter operator %q", op)
				}
				q.Filters = append(q.Filters, models.Filter{Column: key, Op: models.FilterOp(op), Value: value})
			}
		}
	}

	return q, nil
}
