package validatorset

import (
	"bytes"
	"encoding/hex"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/gconf"
	"github.com/iov-one/valset/orm"
	"github.com/iov-one/valset/x/events"
	"github.com/iov-one/valset/x/valconfig"
)

// ConfigStore gives access to the keys declared by validators.
// *valconfig.Store implements it.
type ConfigStore interface {
	Exists(db valset.ReadOnlyKVStore, validator valset.Address) (bool, error)
	Get(db valset.ReadOnlyKVStore, validator valset.Address) (*valconfig.Config, error)
}

var _ ConfigStore = (*valconfig.Store)(nil)

var registryBucket = orm.NewBucket("validatorset")

// LoadConfiguration returns the configuration saved at genesis.
func LoadConfiguration(db valset.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Authorize returns ErrAuthorization unless the principal is the configured
// authority.
func Authorize(conf *Configuration, principal valset.Address) error {
	if principal == nil || !principal.Equals(conf.Authority) {
		return errors.Wrapf(ErrAuthorization, "principal %q", principal)
	}
	return nil
}

// Bootstrap creates the registry with an empty roster and a new change
// event channel. It succeeds only once and only when called on behalf of
// the configured authority.
func Bootstrap(db valset.KVStore, sender valset.Address) error {
	conf, err := LoadConfiguration(db)
	switch {
	case errors.ErrNotFound.Is(err):
		return errors.Wrap(ErrNotInitialized, "no configuration")
	case err != nil:
		return errors.Wrap(err, "configuration")
	}
	switch exists, err := registryBucket.Has(db, conf.Authority); {
	case err != nil:
		return err
	case exists:
		return errors.Wrapf(ErrAlreadyInitialized, "registry at %s", conf.Authority)
	}
	if err := Authorize(conf, sender); err != nil {
		return err
	}
	handle, err := events.NewHandle(db, conf.Authority)
	if err != nil {
		return errors.Wrap(err, "change events")
	}
	r := Registry{ChangeEvents: *handle}
	return registryBucket.Put(db, conf.Authority, &r)
}

// loadRegistry returns the registry together with the key it is stored
// under.
func loadRegistry(db valset.ReadOnlyKVStore) (*Registry, valset.Address, error) {
	conf, err := LoadConfiguration(db)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(ErrNotInitialized, "no configuration")
	case err != nil:
		return nil, nil, err
	}
	var r Registry
	switch err := registryBucket.One(db, conf.Authority, &r); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, ErrNotInitialized
	case err != nil:
		return nil, nil, err
	}
	if err := r.ChangeEvents.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "change events")
	}
	if owner := r.ChangeEvents.Owner(); !owner.Equals(conf.Authority) {
		return nil, nil, errors.Wrapf(errors.ErrState, "change events owned by %s", owner)
	}
	return &r, conf.Authority, nil
}

// Size returns the number of validators in the roster.
func Size(db valset.ReadOnlyKVStore) (int, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return 0, err
	}
	return len(r.Validators), nil
}

// IsValidator returns true if given address is in the roster.
func IsValidator(db valset.ReadOnlyKVStore, addr valset.Address) (bool, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return false, err
	}
	for _, v := range r.Validators {
		if v.Address.Equals(addr) {
			return true, nil
		}
	}
	return false, nil
}

// GetIthValidatorAddress returns the address of the validator at given
// position. Positions follow the admission order.
func GetIthValidatorAddress(db valset.ReadOnlyKVStore, i int) (valset.Address, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(r.Validators) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, len(r.Validators))
	}
	return r.Validators[i].Address, nil
}

// Validators returns a copy of the whole roster.
func Validators(db valset.ReadOnlyKVStore) ([]ValidatorInfo, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	return snapshot(r.Validators), nil
}

// EventCount returns the number of change events emitted so far.
func EventCount(db valset.ReadOnlyKVStore) (uint64, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return 0, err
	}
	return r.ChangeEvents.Counter, nil
}

// LoadChangeEvent returns the change event with given sequence number.
func LoadChangeEvent(db valset.ReadOnlyKVStore, seq uint64) (*ChangeEvent, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	e, err := events.Get(db, r.ChangeEvents.GUID, seq)
	if err != nil {
		return nil, err
	}
	return decodeChangeEvent(e)
}

// ChangeEvents returns all change events, oldest first.
func ChangeEvents(db valset.ReadOnlyKVStore) ([]*ChangeEvent, error) {
	r, _, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	list, err := events.List(db, r.ChangeEvents)
	if err != nil {
		return nil, err
	}
	res := make([]*ChangeEvent, len(list))
	for i, e := range list {
		if res[i], err = decodeChangeEvent(e); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func decodeChangeEvent(e *events.Event) (*ChangeEvent, error) {
	var ce ChangeEvent
	if err := ce.Unmarshal(e.Payload); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "change event %d: %s", e.Sequence, err)
	}
	return &ce, nil
}

// Controller implements the operations that depend on the declared
// validator keys.
type Controller struct {
	configs ConfigStore
}

// NewController returns a controller reading keys from given store.
func NewController(configs ConfigStore) *Controller {
	return &Controller{configs: configs}
}

// AddValidator appends a validator to the roster. Its keys are left empty
// until the next reconfiguration. The validator must have declared its keys
// already. Adding the same address twice is not prevented.
func (c *Controller) AddValidator(ctx valset.Context, db valset.KVStore, addr valset.Address) error {
	r, key, err := loadRegistry(db)
	if err != nil {
		return err
	}
	switch ok, err := c.configs.Exists(db, addr); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(ErrMissingConfiguration, "validator %s", addr)
	}
	r.Validators = append(r.Validators, ValidatorInfo{
		Address:              addr,
		ConsensusVotingPower: initialVotingPower,
	})
	if err := registryBucket.Put(db, key, r); err != nil {
		return err
	}
	valset.GetLogger(ctx).Debug("validator admitted", "validator", addr.String(), "size", len(r.Validators))
	return nil
}

// CopyValidatorInfo overwrites the keys of given entry with the ones the
// validator declared. It returns true if any key was different. Address and
// voting power are never modified.
func (c *Controller) CopyValidatorInfo(db valset.ReadOnlyKVStore, info *ValidatorInfo) (bool, error) {
	conf, err := c.configs.Get(db, info.Address)
	switch {
	case errors.ErrNotFound.Is(err):
		return false, errors.Wrapf(ErrMissingConfiguration, "validator %s", info.Address)
	case err != nil:
		return false, err
	}

	var changed bool
	if !bytes.Equal(info.ConsensusPubKey, conf.GetConsensusPubKey()) {
		info.ConsensusPubKey = cloneBytes(conf.GetConsensusPubKey())
		changed = true
	}
	if !bytes.Equal(info.NetworkSigningPubKey, conf.GetNetworkSigningPubKey()) {
		info.NetworkSigningPubKey = cloneBytes(conf.GetNetworkSigningPubKey())
		changed = true
	}
	if !bytes.Equal(info.NetworkIdentityPubKey, conf.GetNetworkIdentityPubKey()) {
		info.NetworkIdentityPubKey = cloneBytes(conf.GetNetworkIdentityPubKey())
		changed = true
	}
	return changed, nil
}

// Reconfigure refreshes the keys of every validator in the roster. If any of
// them changed, a single ChangeEvent with the new roster is emitted and
// returned. Otherwise nothing is written and nil is returned.
//
// Membership is never changed here.
func (c *Controller) Reconfigure(ctx valset.Context, db valset.KVStore) (*ChangeEvent, error) {
	r, key, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}

	var changed bool
	for i := range r.Validators {
		entryChanged, err := c.CopyValidatorInfo(db, &r.Validators[i])
		if err != nil {
			return nil, err
		}
		changed = changed || entryChanged
	}

	log := valset.GetLogger(ctx).With("module", packageName)
	if height, ok := valset.GetHeight(ctx); ok {
		log = log.With("height", height)
	}
	if !changed {
		log.Debug("validator set unchanged", "size", len(r.Validators))
		return nil, nil
	}

	event := ChangeEvent{NewValidatorSet: snapshot(r.Validators)}
	if err := events.Emit(db, &r.ChangeEvents, &event); err != nil {
		return nil, errors.Wrap(err, "emit change event")
	}
	if err := registryBucket.Put(db, key, r); err != nil {
		return nil, err
	}
	log.Info("validator set changed",
		"size", len(event.NewValidatorSet),
		"sequence", r.ChangeEvents.Counter-1,
		"fingerprint", hex.EncodeToString(Fingerprint(event.NewValidatorSet)))
	return &event, nil
}
