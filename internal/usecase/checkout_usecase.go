package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文追跡番号の発行（本番はUUID v4、テストでは固定値）
type TrackingNumberGenerator interface {
	NewTrackingNumber() string
}

// CheckoutUsecase は /api/checkout の業務ロジックです。
// カートに追跡番号とORDEREDを刻み、明細を紐づけて1トランザクションで保存します。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	idGen TrackingNumberGenerator
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen TrackingNumberGenerator) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, idGen: idGen}
}

type PurchaseCartInput struct {
	ID         int64
	CustomerID int64
}

type PurchaseItemInput struct {
	Quantity  int64
	UnitPrice int64
}

type PurchaseInput struct {
	Cart      PurchaseCartInput
	CartItems []PurchaseItemInput
}

type PurchaseOutput struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}

// PlaceOrder はチェックアウト本体。
// 追跡番号の発行は毎回新規（同じカートで2回呼ぶと別の番号になる）。
// ストア側での重複チェックはしない（128bitランダムで衝突は無視できる）。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PurchaseInput) (PurchaseOutput, error) {
	if in.Cart.ID < 0 {
		return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	for _, it := range in.CartItems {
		if it.Quantity < 1 {
			return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.UnitPrice < 0 {
			return PurchaseOutput{}, NewHTTPError(http.StatusBadRequest, "invalid unit_price")
		}
	}

	trackingNumber := u.idGen.NewTrackingNumber()

	//カート保存と明細保存は同一トランザクション（全部入るか全部入らないか）
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart := model.Cart{
			ID:                  in.Cart.ID,
			CustomerID:          in.Cart.CustomerID,
			OrderTrackingNumber: &trackingNumber,
			Status:              model.CartStatusOrdered,
		}

		saved, err := r.Carts().Save(ctx, cart)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細のcart_idは保存済みカートのidで埋める（双方向リンクの片側をDBに持たせる）
		items := make([]model.CartItem, 0, len(in.CartItems))
		for _, it := range in.CartItems {
			items = append(items, model.CartItem{
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}

		if _, err := r.CartItems().CreateBulk(ctx, saved.ID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		return PurchaseOutput{}, err
	}
	return PurchaseOutput{OrderTrackingNumber: trackingNumber}, nil
}
