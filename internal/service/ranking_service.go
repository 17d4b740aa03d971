package service

import (
	"context"
	"fmt"

	"petboard/internal/analytics"
	"petboard/internal/config"
	"petboard/internal/model"
	"petboard/internal/repository"
)

// RankingService produces the top selling products list
type RankingService interface {
	GetTopProducts(ctx context.Context) ([]model.ProductRanking, error)
}

type rankingService struct {
	lines  repository.ProductLineRepository
	limit  int
	format analytics.Formatter
}

func NewRankingService(lines repository.ProductLineRepository, cfg *config.Config) RankingService {
	return &rankingService{
		lines: lines,
		limit: cfg.TopProductsLimit,
		format: analytics.Formatter{
			CurrencyPrefix:     cfg.CurrencyPrefix,
			MillionSuffix:      cfg.MillionSuffix,
			ThousandSuffix:     cfg.ThousandSuffix,
			ThousandsSeparator: cfg.ThousandsSeparator,
		},
	}
}

// GetTopProducts groups every product line by product name, sums sales
// value and sold quantity per product, and returns the top entries by
// sales value. Fewer products than the limit yields all of them.
func (s *rankingService) GetTopProducts(ctx context.Context) ([]model.ProductRanking, error) {
	lines, err := s.lines.FindAllOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product lines: %w", err)
	}

	records := make([]analytics.SaleRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, analytics.SaleRecord{
			BookingID:        line.BookingID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			QuantitySelected: line.QuantitySelected,
			LineTotal:        line.TotalPrice.InexactFloat64(),
		})
	}

	groups := analytics.Aggregate(records, analytics.ByProductName, analytics.MeasureLineTotal)
	top := analytics.TopN(groups, s.limit)

	rankings := make([]model.ProductRanking, 0, len(top))
	for i, g := range top {
		rankings = append(rankings, model.ProductRanking{
			Number:      i + 1,
			ProductName: g.Key,
			TotalSales:  s.format.FormatCurrency(g.Total),
			SoldStock:   g.Count,
		})
	}
	return rankings, nil
}
