package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"boardmoves/internal/premove"
)

var (
	ErrNotFound       = errors.New("board not found")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Store 持久化会话。LoadBoard 找不到时返回 ErrNotFound。
type Store interface {
	SaveBoard(b *Board) error
	LoadBoard(id string) (*Board, error)
	DeleteBoard(id string) error
}

type Manager struct {
	mu     sync.RWMutex
	boards map[string]*Board
	store  Store
}

// NewManager store 可以为 nil，此时只在内存里保存
func NewManager(store Store) *Manager {
	return &Manager{boards: make(map[string]*Board), store: store}
}

// NewBoard 用变体的初始局面开一个新会话
func (m *Manager) NewBoard(variant string) (*Board, error) {
	v, ok := premove.LookupVariant(variant)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	now := time.Now()
	b := &Board{
		ID:        uuid.NewString(),
		Variant:   v.Name,
		Pieces:    v.StartPieces(),
		CanCastle: v.Castle != premove.CastleNone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.save(b); err != nil {
		return nil, err
	}
	m.boards[b.ID] = b
	return b.Clone(), nil
}

// Get 先查内存，再查持久层（查到后放回内存）
func (m *Manager) Get(id string) (*Board, error) {
	m.mu.RLock()
	b, ok := m.boards[id]
	m.mu.RUnlock()
	if ok {
		return b.Clone(), nil
	}
	if m.store == nil {
		return nil, ErrNotFound
	}

	b, err := m.store.LoadBoard(id)
	if err != nil {
		return nil, err
	}
	log.WithField("board_id", id).Debug("session: loaded from store")

	m.mu.Lock()
	if cur, ok := m.boards[id]; ok {
		b = cur
	} else {
		m.boards[id] = b
	}
	m.mu.Unlock()
	return b.Clone(), nil
}

// Update 用新的局面替换会话里的快照
func (m *Manager) Update(id string, pieces premove.Pieces, canCastle bool) (*Board, error) {
	if _, err := m.Get(id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := b.Clone()
	next.Pieces = pieces
	next.CanCastle = canCastle
	next.UpdatedAt = time.Now()
	if err := m.save(next); err != nil {
		return nil, err
	}
	m.boards[id] = next
	return next.Clone(), nil
}

// SetChess960 打开 / 关闭 960 易位（王吃车）
func (m *Manager) SetChess960(id string, on bool) (*Board, error) {
	if _, err := m.Get(id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := b.Clone()
	next.Chess960 = on
	next.UpdatedAt = time.Now()
	if err := m.save(next); err != nil {
		return nil, err
	}
	m.boards[id] = next
	return next.Clone(), nil
}

// Delete 关闭会话，同时从持久层删除
func (m *Manager) Delete(id string) error {
	if _, err := m.Get(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store != nil {
		if err := m.store.DeleteBoard(id); err != nil {
			return fmt.Errorf("delete board %s: %w", id, err)
		}
	}
	delete(m.boards, id)
	return nil
}

// Len 内存中的会话数
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.boards)
}

func (m *Manager) save(b *Board) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.SaveBoard(b); err != nil {
		return fmt.Errorf("save board %s: %w", b.ID, err)
	}
	return nil
}
