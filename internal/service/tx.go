package service

import "staffhub.app/api-server/internal/store"

// StoreProvider and TxRunner are the store package's transaction seam,
// re-exported under the names services use.
type (
	StoreProvider = store.Provider
	TxRunner      = store.TxRunner
)
