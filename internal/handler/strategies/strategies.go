// File: internal/handler/strategies/strategies.go
package strategies

import (
	"context"

	"options-lab/internal/cache"
	"options-lab/internal/store"
	"options-lab/internal/worker"
)

// catalogCacheKey 未帶過濾條件的策略目錄快取
const catalogCacheKey = "strategies:catalog"

// 測試替換點
var (
	listStrategies    = store.ListStrategies
	getStrategyByID   = store.GetStrategyByID
	createStrategy    = store.CreateStrategy
	updateStrategy    = store.UpdateStrategy
	deleteStrategy    = store.DeleteStrategy
	strategyExists    = store.StrategyExists
	listStrategyLegs  = store.ListStrategyLegs
	createStrategyLeg = store.CreateStrategyLeg
	deleteStrategyLeg = store.DeleteStrategyLeg
)

// invalidateCatalog 把目錄快取清除丟給背景 worker，不阻塞請求
func invalidateCatalog(rdb cache.Cache, wp worker.Pool) {
	wp.Submit(func() {
		rdb.Del(context.Background(), catalogCacheKey)
	})
}
