// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Kitties    *PoolHandle `prefix:"K"`
	KittyOwner *PoolHandle `prefix:"O"`
	OwnerCount *PoolHandle `prefix:"N"`
	OwnerList  *PoolHandle `prefix:"L"`
	OwnerIndex *PoolHandle `prefix:"D"`
	AllCount   *PoolHandle `prefix:"C"`
	AllList    *PoolHandle `prefix:"A"`
	AllIndex   *PoolHandle `prefix:"I"`
	Nonce      *PoolHandle `prefix:"X"`
	Balances   *PoolHandle `prefix:"B"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open registry database
type Database struct {
	sync.RWMutex
	Pool     Pools
	log      *logger.L
	db       *leveldb.DB
	trx      *transaction
	readOnly bool
}

// Open - open up the database connection
//
// a database with a newer layout version is rejected
func Open(database string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return initialise(db, database, readOnly)
}

// OpenInMemory - open a volatile database, used for testing and simulation
func OpenInMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return initialise(db, "memory", ReadWrite)
}

func initialise(db *leveldb.DB, name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %s has no version record", name)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	d := &Database{
		log:      log,
		db:       db,
		readOnly: readOnly,
	}
	d.trx = newTransaction(db, newCache())

	err = d.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened: %s  version: %d  read only: %t", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return d, nil
}

// assign a handle to every pool field from its prefix tag
func (d *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if 0 == prefix {
			return fault.ErrInvalidPoolPrefix
		}
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s duplicates prefix of: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
	}
}

// Begin - start the single write transaction
//
// only one transaction can be in progress at a time
func (d *Database) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.ErrReadOnlyDatabase
	}
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// Get - read a committed value
func (d *Database) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - read a committed count value
func (d *Database) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// Has - check a committed key
func (d *Database) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

// return the version number, zero for a new database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
