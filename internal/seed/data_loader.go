package seed

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/sirupsen/logrus"
)

// 適用済みマーカー。件数カウントではなくこのバージョン行で冪等にする
const (
	divisionSeedVersion = "divisions-v1"
	customerSeedVersion = "customers-v1"
)

// 顧客が参照するDivisionのid/名前は固定
var seedDivisions = []model.Division{
	{ID: 4, Name: "California"},
	{ID: 9, Name: "Florida"},
	{ID: 12, Name: "Illinois"},
	{ID: 31, Name: "New York"},
	{ID: 42, Name: "Texas"},
}

var seedCustomers = []model.Customer{
	{FirstName: "Priya", LastName: "Patel", Address: "456 Ocean Ave", PostalCode: "90210", Phone: "(310)555-0101", DivisionID: 4},
	{FirstName: "Wei", LastName: "Chen", Address: "789 Ranch Road", PostalCode: "75001", Phone: "(214)555-0202", DivisionID: 42},
	{FirstName: "Anika", LastName: "Sharma", Address: "321 Beach Blvd", PostalCode: "33139", Phone: "(305)555-0303", DivisionID: 9},
	{FirstName: "Kenji", LastName: "Tanaka", Address: "654 Broadway", PostalCode: "10012", Phone: "(212)555-0404", DivisionID: 31},
	{FirstName: "Mei", LastName: "Wong", Address: "987 Lake Shore Dr", PostalCode: "60611", Phone: "(312)555-0505", DivisionID: 12},
}

// DataLoader は起動時に1回だけ走るシーダーです。
// マーカー確認・参照確認・投入・マーカー記録を同一トランザクションで行うので、
// 途中で失敗した回は何も残らず、次回の起動でやり直せます。
type DataLoader struct {
	tx  repo.TransactionManager
	log *logrus.Logger
}

func NewDataLoader(tx repo.TransactionManager, log *logrus.Logger) *DataLoader {
	return &DataLoader{tx: tx, log: log}
}

// Run はサーバーがリッスンする前に呼ぶ。
// Divisionが見つからない場合のエラーは起動中断すべき致命扱い。
func (l *DataLoader) Run(ctx context.Context) error {
	if err := l.ensureDivisions(ctx); err != nil {
		return fmt.Errorf("seed divisions: %w", err)
	}
	if err := l.ensureCustomers(ctx); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	return nil
}

func (l *DataLoader) ensureDivisions(ctx context.Context) error {
	return l.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		applied, err := r.Seeds().IsApplied(ctx, divisionSeedVersion)
		if err != nil {
			return err
		}
		if applied {
			l.log.WithField("version", divisionSeedVersion).Info("seed already applied, skipping")
			return nil
		}

		//既存行には触らない（OnConflict DoNothing）
		for _, d := range seedDivisions {
			if _, err := r.Divisions().Save(ctx, d); err != nil {
				return err
			}
		}

		if err := r.Seeds().MarkApplied(ctx, divisionSeedVersion); err != nil {
			return err
		}

		l.log.WithField("version", divisionSeedVersion).Info("seed applied")
		return nil
	})
}

func (l *DataLoader) ensureCustomers(ctx context.Context) error {
	return l.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		applied, err := r.Seeds().IsApplied(ctx, customerSeedVersion)
		if err != nil {
			return err
		}
		if applied {
			l.log.WithField("version", customerSeedVersion).Info("seed already applied, skipping")
			return nil
		}

		for _, c := range seedCustomers {
			//参照先Divisionが無ければ致命（ロールバックして顧客は0件のまま）
			if _, err := r.Divisions().FindByID(ctx, c.DivisionID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return fmt.Errorf("division %d: %w", c.DivisionID, err)
				}
				return err
			}

			if _, err := r.Customers().Save(ctx, c); err != nil {
				return err
			}
		}

		if err := r.Seeds().MarkApplied(ctx, customerSeedVersion); err != nil {
			return err
		}

		l.log.WithFields(logrus.Fields{
			"version":   customerSeedVersion,
			"customers": len(seedCustomers),
		}).Info("seed applied")
		return nil
	})
}
