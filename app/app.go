/*
Package app binds the extensions into a tendermint ABCI application.

Every ABCI call is serialized by a single mutex. Each transaction runs on
its own cache wrap of the block state and is discarded as a whole when it
fails. Validator set changes emitted during a block are turned into
tendermint validator updates at the end of that block.
*/
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x/sigs"
	"github.com/iov-one/valset/x/validatorset"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Application implements abci.Application. Errors in ABCI steps that do not
// take user input (InitChain, BeginBlock, EndBlock, Commit) leave the node
// in an unknown state and cause a panic.
type Application struct {
	abci.BaseApplication

	mu sync.Mutex

	// name is what is returned from abci.Info
	name   string
	logger log.Logger
	debug  bool

	store       *CommitStore
	initializer valset.Initializer
	handler     valset.Handler
	queries     valset.QueryRouter

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext valset.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height), reset on BeginBlock
	blockContext valset.Context

	// eventsAtBlockStart is the number of validator set changes
	// emitted before the current block.
	eventsAtBlockStart uint64
}

var _ abci.Application = (*Application)(nil)

// NewApplication loads the latest state from the store and returns an
// application ready to process blocks.
func NewApplication(
	name string,
	store valset.CommitKVStore,
	handler valset.Handler,
	queries valset.QueryRouter,
	initializer valset.Initializer,
	logger log.Logger,
	debug bool,
) (*Application, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, errors.Wrap(err, "load store")
	}
	a := &Application{
		name:        name,
		logger:      logger,
		debug:       debug,
		store:       cs,
		initializer: initializer,
		handler:     handler,
		queries:     queries,
		baseContext: valset.WithLogger(context.Background(), logger),
	}

	if a.chainID, err = loadChainID(cs.DeliverStore()); err != nil {
		return nil, err
	}
	if a.chainID != "" {
		a.baseContext = valset.WithChainID(a.baseContext, a.chainID)
	}

	commit, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	a.blockContext = valset.WithHeight(a.baseContext, commit.Version)
	return a, nil
}

// ChainID returns the chain id set at genesis, empty before InitChain.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// Info implements abci.Application. It returns the height and hash,
// as well as the abci name and version.
func (a *Application) Info(req abci.RequestInfo) abci.ResponseInfo {
	a.mu.Lock()
	defer a.mu.Unlock()

	commit, err := a.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	a.logger.Info("Info synced",
		"height", commit.Version,
		"hash", fmt.Sprintf("%X", commit.Hash))

	return abci.ResponseInfo{
		Data:             a.name,
		Version:          valset.Version(),
		LastBlockHeight:  commit.Version,
		LastBlockAppHash: commit.Hash,
	}
}

// InitChain stores the chain id, loads the genesis application state and
// returns the initial validator set.
func (a *Application) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.initChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}

	var res abci.ResponseInitChain
	switch event, err := validatorset.LoadChangeEvent(a.store.DeliverStore(), 0); {
	case err == nil:
		res.Validators = validatorset.ValidatorUpdates(nil, event.NewValidatorSet)
	case errors.ErrNotFound.Is(err):
		a.logger.Info("Genesis validator set is empty, using tendermint validators")
	default:
		panic(err)
	}
	a.eventsAtBlockStart = a.eventCount(a.store.DeliverStore())
	return res
}

func (a *Application) initChain(chainID string, appState []byte) error {
	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "app state previously loaded for chain %s", a.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}
	var opts valset.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(a.store.DeliverStore(), chainID); err != nil {
		return err
	}
	a.chainID = chainID
	a.baseContext = valset.WithChainID(a.baseContext, chainID)
	a.blockContext = valset.WithHeight(a.baseContext, 0)
	return a.initializer.FromGenesis(opts, a.store.DeliverStore())
}

// BeginBlock sets up the block context and remembers how many validator
// set changes were emitted so far.
func (a *Application) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.blockContext = valset.WithHeight(a.baseContext, req.Header.GetHeight())
	a.eventsAtBlockStart = a.eventCount(a.store.DeliverStore())
	return abci.ResponseBeginBlock{}
}

// CheckTx runs the transaction against the check state.
func (a *Application) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx := valset.WithLogInfo(a.blockContext, "call", "check_tx")
	res, err := a.runTx(ctx, a.store.CheckStore(), txBytes)
	return valset.CheckOrError(res, err, a.debug)
}

// DeliverTx runs the transaction against the block state.
func (a *Application) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx := valset.WithLogInfo(a.blockContext, "call", "deliver_tx")
	res, err := a.runTx(ctx, a.store.DeliverStore(), txBytes)
	if err != nil {
		valset.GetLogger(ctx).Debug("transaction failed", "err", err)
	}
	return valset.DeliverOrError(res, err, a.debug)
}

// runTx decodes and authenticates the transaction and runs its handler on
// a fresh cache wrap. The cache is written only on success.
func (a *Application) runTx(ctx valset.Context, db valset.CacheableKVStore, txBytes []byte) (res *valset.DeliverResult, err error) {
	tx, err := DecodeTx(txBytes)
	if err != nil {
		return nil, err
	}

	cache := db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	if tx.GetSignature() != nil {
		if ctx, err = sigs.VerifyTx(ctx, cache, tx); err != nil {
			return nil, errors.Wrap(err, "cannot verify signature")
		}
	}
	if res, err = a.handler.Deliver(ctx, cache, tx); err != nil {
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return res, nil
}

// EndBlock returns the tendermint updates moving from the validator set
// valid before this block to the last one emitted within it.
func (a *Application) EndBlock(req abci.RequestEndBlock) abci.ResponseEndBlock {
	a.mu.Lock()
	defer a.mu.Unlock()

	db := a.store.DeliverStore()
	now := a.eventCount(db)
	if now <= a.eventsAtBlockStart {
		return abci.ResponseEndBlock{}
	}

	var prev []validatorset.ValidatorInfo
	if a.eventsAtBlockStart > 0 {
		prev = a.mustLoadSnapshot(db, a.eventsAtBlockStart-1)
	}
	next := a.mustLoadSnapshot(db, now-1)
	updates := validatorset.ValidatorUpdates(prev, next)

	a.logger.Info("Validator set changed",
		"height", req.Height,
		"events", now-a.eventsAtBlockStart,
		"updates", len(updates))
	a.eventsAtBlockStart = now
	return abci.ResponseEndBlock{ValidatorUpdates: updates}
}

// eventCount returns the number of validator set changes, zero when the
// validator set was never created.
func (a *Application) eventCount(db valset.ReadOnlyKVStore) uint64 {
	n, err := validatorset.EventCount(db)
	switch {
	case err == nil:
		return n
	case validatorset.ErrNotInitialized.Is(err):
		return 0
	default:
		panic(err)
	}
}

func (a *Application) mustLoadSnapshot(db valset.ReadOnlyKVStore, seq uint64) []validatorset.ValidatorInfo {
	e, err := validatorset.LoadChangeEvent(db, seq)
	if err != nil {
		panic(err)
	}
	return e.NewValidatorSet
}

// Commit writes the block state and returns the new application hash.
func (a *Application) Commit() abci.ResponseCommit {
	a.mu.Lock()
	defer a.mu.Unlock()

	commit, err := a.store.Commit()
	if err != nil {
		panic(err)
	}
	a.logger.Debug("Commit synced",
		"height", commit.Version,
		"hash", fmt.Sprintf("%X", commit.Hash))
	return abci.ResponseCommit{Data: commit.Hash}
}

// Query answers from the last committed state. The path selects the query
// handler, the remainder of the path is passed to it.
func (a *Application) Query(req abci.RequestQuery) abci.ResponseQuery {
	a.mu.Lock()
	defer a.mu.Unlock()

	h, rest := a.queries.Handler(req.Path)
	if h == nil {
		return valset.QueryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path), a.debug)
	}
	commit, err := a.store.CommitInfo()
	if err != nil {
		return valset.QueryError(errors.Wrap(errors.ErrDatabase, err.Error()), a.debug)
	}
	value, err := h.Query(a.store.QueryStore(), rest, req.Data)
	if err != nil {
		return valset.QueryError(err, a.debug)
	}
	return abci.ResponseQuery{
		Height: commit.Version,
		Value:  value,
	}
}
