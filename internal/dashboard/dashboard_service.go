package dashboard

import (
	"time"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Service computes dashboard figures fresh on every call. It only reads;
// results are as-of-now snapshots, not transactionally consistent with
// concurrent writes.
type Service struct {
	repository *repository.Repository
}

func NewService(r *repository.Repository) *Service {
	return &Service{repository: r}
}

type Stats struct {
	ActiveAssetCount     int64   `json:"activeAssetsCount"`
	TotalAssetValue      float64 `json:"totalAssetValue"`
	FiscalYearPurchases  float64 `json:"fiscalYearPurchases"`
	FiscalYearAssetCount int64   `json:"fiscalYearAssetCount"`
}

type CategoryValue struct {
	Name  string  `json:"name" db:"name"`
	Value float64 `json:"value" db:"value"`
}

func (s *Service) ActiveAssetCount() (int64, error) {
	var count int64
	_, err := s.repository.Goqu.
		Select(goqu.COUNT("*")).
		From("assets").
		Where(goqu.Ex{"status": models.StatusActive}).
		Executor().
		ScanVal(&count)
	if err != nil {
		return 0, &apperrors.AggregationError{Section: "stats", Err: err}
	}
	return count, nil
}

// TotalAssetValue sums cost over all assets; absent cost counts as zero.
func (s *Service) TotalAssetValue() (float64, error) {
	var total float64
	_, err := s.repository.Goqu.
		Select(goqu.COALESCE(goqu.SUM("cost"), 0)).
		From("assets").
		Executor().
		ScanVal(&total)
	if err != nil {
		return 0, &apperrors.AggregationError{Section: "stats", Err: err}
	}
	return total, nil
}

// FiscalYearPurchases sums cost and counts assets purchased inside the
// window, bounds inclusive.
func (s *Service) FiscalYearPurchases(reference time.Time) (float64, int64, error) {
	start, end := FiscalWindow(reference)

	var row struct {
		Total float64 `db:"total"`
		Count int64   `db:"count"`
	}
	_, err := s.repository.Goqu.
		Select(
			goqu.COALESCE(goqu.SUM("cost"), 0).As("total"),
			goqu.COUNT("*").As("count"),
		).
		From("assets").
		Where(
			goqu.I("purchase_date").Gte(start),
			goqu.I("purchase_date").Lte(end),
		).
		Executor().
		ScanStruct(&row)
	if err != nil {
		return 0, 0, &apperrors.AggregationError{Section: "stats", Err: err}
	}

	return row.Total, row.Count, nil
}

func (s *Service) Stats(reference time.Time) (*Stats, error) {
	activeCount, err := s.ActiveAssetCount()
	if err != nil {
		return nil, err
	}

	totalValue, err := s.TotalAssetValue()
	if err != nil {
		return nil, err
	}

	fiscalValue, fiscalCount, err := s.FiscalYearPurchases(reference)
	if err != nil {
		return nil, err
	}

	return &Stats{
		ActiveAssetCount:     activeCount,
		TotalAssetValue:      totalValue,
		FiscalYearPurchases:  fiscalValue,
		FiscalYearAssetCount: fiscalCount,
	}, nil
}

// CategoryValueBreakdown sums asset cost per category. Categories whose
// total is zero are dropped; the rest keep category insertion order.
func (s *Service) CategoryValueBreakdown() ([]CategoryValue, error) {
	query := s.repository.Goqu.
		From(goqu.T("categories").As("c")).
		Select(
			goqu.I("c.name").As("name"),
			goqu.COALESCE(goqu.SUM(goqu.I("a.cost")), 0).As("value"),
		).
		LeftJoin(goqu.T("assets").As("a"), goqu.On(goqu.Ex{"a.category_id": goqu.I("c.id")})).
		GroupBy(goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.created_at")).
		Order(goqu.I("c.created_at").Asc())

	rows := []CategoryValue{}
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, &apperrors.AggregationError{Section: "category-value", Err: err}
	}

	result := make([]CategoryValue, 0, len(rows))
	for _, row := range rows {
		if row.Value > 0 {
			result = append(result, row)
		}
	}

	return result, nil
}
