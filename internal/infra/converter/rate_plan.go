package converter

import (
	"fmt"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

func RatePlansFromRows(rows []pgq.ListRatePlansRow) ([]rate.Plan, error) {
	plans := make([]rate.Plan, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromPgtype(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("rate plan %s amount: %w", row.Code, err)
		}
		plans = append(plans, rate.Plan{
			Code:      row.Code,
			Active:    row.Active,
			Rank:      int(row.Rank),
			ValidFrom: pgconv.DatePtrFromPgtype(row.ValidFrom),
			ValidTo:   pgconv.DatePtrFromPgtype(row.ValidTo),
			MinStay:   int(row.MinStay),
			MaxStay:   int(row.MaxStay),
			Amount:    amount,
		})
	}
	return plans, nil
}
