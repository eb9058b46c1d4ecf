package model

import "time"

type WishlistItem struct {
	ID              string    `json:"id"`
	BookName        string    `json:"bookName"`
	SeriesName      string    `json:"seriesName,omitempty"`
	BookVolume      string    `json:"bookVolume,omitempty"`
	Author          string    `json:"author,omitempty"`
	PublishingHouse string    `json:"publishingHouse,omitempty"`
	DateAdded       time.Time `json:"dateAdded"`
}

type WishlistInput struct {
	BookName        string `json:"bookName" validate:"required"`
	SeriesName      string `json:"seriesName,omitempty"`
	BookVolume      string `json:"bookVolume,omitempty"`
	Author          string `json:"author,omitempty"`
	PublishingHouse string `json:"publishingHouse,omitempty"`
}

type WishlistPatch struct {
	BookName        *string `json:"bookName,omitempty" validate:"omitempty,min=1"`
	SeriesName      *string `json:"seriesName,omitempty"`
	BookVolume      *string `json:"bookVolume,omitempty"`
	Author          *string `json:"author,omitempty"`
	PublishingHouse *string `json:"publishingHouse,omitempty"`
}

func (p WishlistPatch) Empty() bool {
	return p == (WishlistPatch{})
}
