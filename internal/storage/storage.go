package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/dgraph-io/badger/v4"

	"boardmoves/internal/premove"
	"boardmoves/internal/server/session"
)

const boardPrefix = "board:"

// Options 打开数据库的参数
type Options struct {
	// Dir 为空时使用内存模式，进程退出即丢失
	Dir string
	// TTL 会话最后一次写入后的存活时间，0 表示永久保存
	TTL time.Duration
}

// Storage 用 BadgerDB 保存会话，实现 session.Store
type Storage struct {
	db  *badger.DB
	ttl time.Duration
}

var _ session.Store = (*Storage)(nil)

func Open(opts Options) (*Storage, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	bopts.Logger = nil

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Dir, err)
	}
	log.WithFields(log.Fields{
		"dir":       opts.Dir,
		"in_memory": opts.Dir == "",
		"ttl":       opts.TTL.String(),
	}).Info("storage: opened")
	return &Storage{db: db, ttl: opts.TTL}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func boardKey(id string) []byte {
	return []byte(boardPrefix + id)
}

func (s *Storage) SaveBoard(b *session.Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(boardKey(b.ID), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

// LoadBoard 找不到（或已过期）时返回 session.ErrNotFound
func (s *Storage) LoadBoard(id string) (*session.Board, error) {
	var b session.Board
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(boardKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return session.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &b)
		})
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Storage) DeleteBoard(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(boardKey(id))
	})
}

// BoardIDs 列出所有保存着的会话 ID
func (s *Storage) BoardIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(boardPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(boardPrefix):]))
		}
		return nil
	})
	return ids, err
}

// Prune 删除读不出来或变体已不存在的会话，返回删除的个数
func (s *Storage) Prune() (int, error) {
	ids, err := s.BoardIDs()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, id := range ids {
		b, err := s.LoadBoard(id)
		switch {
		case errors.Is(err, session.ErrNotFound):
			continue
		case err == nil:
			if _, ok := premove.LookupVariant(b.Variant); ok {
				continue
			}
		}
		log.WithField("board_id", id).WithError(err).Warn("storage: pruning unusable board")
		if err := s.DeleteBoard(id); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
