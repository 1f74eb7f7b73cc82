package models

import (
	"time"

	sharedModels "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Bookmark серверная модель закладки.
//
// UserID: владелец, задаётся при создании и больше не меняется.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBookmark данные для создания закладки.
type NewBookmark struct {
	Title       string
	Description *string
	Link        string
}

// BookmarkPatch частичное обновление закладки, nil означает "не менять".
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

// Empty сообщает, что в патче нет ни одного поля.
func (p BookmarkPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}

// DTO переводит закладку в формат HTTP API.
func (b Bookmark) DTO() sharedModels.Bookmark {
	return sharedModels.Bookmark{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BookmarkDTOs переводит список закладок, nil превращается в пустой срез.
func BookmarkDTOs(list []Bookmark) []sharedModels.Bookmark {
	out := make([]sharedModels.Bookmark, 0, len(list))
	for _, b := range list {
		out = append(out, b.DTO())
	}
	return out
}
