// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is a single entry of a shopping list.
type Item struct {
	// ID is the client-generated identifier of the item.
	ID string `json:"id"`

	// Name is the display name of the item (e.g. "Milk").
	Name string `json:"name"`

	// Quantity is a free-form amount (e.g. "2", "500g").
	Quantity string `json:"quantity,omitempty"`

	// Category is an optional grouping label used by the UI.
	Category string `json:"category,omitempty"`

	// Notes holds optional user notes.
	Notes string `json:"notes,omitempty"`

	// Purchased marks the item as done. Only a boolean true counts towards
	// [ListSummary.CompletedCount].
	Purchased bool `json:"purchased"`

	// Extra keeps members other clients wrote that Item does not declare,
	// and declared members of an unexpected type. They are encoded back
	// unchanged.
	Extra map[string]json.RawMessage `json:"-"`

	// raw holds an element that is not an object at all.
	raw json.RawMessage
}

type plainItem Item

// SetPurchased marks the item and drops a mistyped "purchased" member so the
// new value is the one written back.
func (i *Item) SetPurchased(purchased bool) {
	i.Purchased = purchased
	i.Extra = withoutMembers(i.Extra, "purchased")
}

// UnmarshalJSON implements [json.Unmarshaler]. It never fails on valid JSON:
// an element that is not an object is kept as-is and counts as an item that
// is not purchased.
func (i *Item) UnmarshalJSON(b []byte) error {
	*i = Item{}

	members, ok := objectMembers(b)
	if !ok {
		i.raw = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
		return nil
	}

	i.Extra = decodeMembers(members, map[string]any{
		"id":        &i.ID,
		"name":      &i.Name,
		"quantity":  &i.Quantity,
		"category":  &i.Category,
		"notes":     &i.Notes,
		"purchased": &i.Purchased,
	})
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (i Item) MarshalJSON() ([]byte, error) {
	if i.raw != nil {
		return i.raw, nil
	}
	return encodeMembers(plainItem(i), i.Extra)
}

// ItemList is the ordered item sequence of a list.
//
// Content written by older clients may carry a missing or null "items" value,
// which decodes as an empty sequence. Elements are decoded one by one, so a
// malformed element never fails the whole document.
type ItemList []Item

// UnmarshalJSON implements [json.Unmarshaler]. A value that is neither null
// nor an array is an error; [ListContent] keeps such a value verbatim.
func (l *ItemList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] != '[' {
		return fmt.Errorf("items: expected an array, got %.20s", trimmed)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return err
	}

	items := make(ItemList, len(elements))
	for n, element := range elements {
		if err := items[n].UnmarshalJSON(element); err != nil {
			return err
		}
	}
	*l = items
	return nil
}

// ListContent is the full content of one shopping list. It is stored remotely
// as a single JSON document per list.
type ListContent struct {
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	Items     ItemList `json:"items"`
	UpdatedAt string   `json:"updatedAt,omitempty"`

	// Extra keeps undeclared and mistyped members, see [Item.Extra].
	Extra map[string]json.RawMessage `json:"-"`
}

type plainListContent ListContent

// UnmarshalJSON implements [json.Unmarshaler]. Only a document that is not an
// object fails.
func (c *ListContent) UnmarshalJSON(b []byte) error {
	members, ok := objectMembers(b)
	if !ok {
		return fmt.Errorf("list content: expected an object, got %.20s", bytes.TrimSpace(b))
	}

	*c = ListContent{}
	c.Extra = decodeMembers(members, map[string]any{
		"id":        &c.ID,
		"name":      &c.Name,
		"items":     &c.Items,
		"updatedAt": &c.UpdatedAt,
	})
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (c ListContent) MarshalJSON() ([]byte, error) {
	return encodeMembers(plainListContent(c), c.Extra)
}

// Counts returns the number of items and the number of purchased items.
// A nil receiver yields zero counts.
func (c *ListContent) Counts() (itemCount, completedCount int) {
	if c == nil {
		return 0, 0
	}
	for _, item := range c.Items {
		if item.Purchased {
			completedCount++
		}
	}
	return len(c.Items), completedCount
}

// ListSummary is the denormalized entry of one list inside the [ListsIndex].
//
// ItemCount and CompletedCount are derived from the corresponding
// [ListContent] and must match it as of the last successful sync of that list.
type ListSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ItemCount      int    `json:"itemCount"`
	CompletedCount int    `json:"completedCount"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`

	// Extra keeps undeclared and mistyped members, see [Item.Extra].
	Extra map[string]json.RawMessage `json:"-"`
}

type plainListSummary ListSummary

// Derive overwrites the derived members with fresh values. Mistyped copies of
// them are dropped so they cannot shadow zero counts.
func (s ListSummary) Derive(itemCount, completedCount int, updatedAt string) ListSummary {
	s.ItemCount = itemCount
	s.CompletedCount = completedCount
	s.UpdatedAt = updatedAt
	s.Extra = withoutMembers(s.Extra, "itemCount", "completedCount", "updatedAt")
	return s
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *ListSummary) UnmarshalJSON(b []byte) error {
	members, ok := objectMembers(b)
	if !ok {
		return fmt.Errorf("list summary: expected an object, got %.20s", bytes.TrimSpace(b))
	}

	*s = ListSummary{}
	s.Extra = decodeMembers(members, map[string]any{
		"id":             &s.ID,
		"name":           &s.Name,
		"itemCount":      &s.ItemCount,
		"completedCount": &s.CompletedCount,
		"createdAt":      &s.CreatedAt,
		"updatedAt":      &s.UpdatedAt,
	})
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (s ListSummary) MarshalJSON() ([]byte, error) {
	return encodeMembers(plainListSummary(s), s.Extra)
}

// ListsIndex maps a list identifier to its summary. It is the single
// "directory" document for all lists of a user.
type ListsIndex map[string]ListSummary

// ListsMetadata is the in-process shape of the index handled by list
// providers. Extra carries the other top-level members of the remote index
// document.
type ListsMetadata struct {
	Lists ListsIndex                 `json:"lists"`
	Extra map[string]json.RawMessage `json:"-"`
}

// ListsProfile is the remote payload shape of the index document:
//
//	{"shoppingLists": {"<id>": {...}}}
type ListsProfile struct {
	ShoppingLists ListsIndex `json:"shoppingLists"`

	// Extra keeps the other top-level members, see [Item.Extra].
	Extra map[string]json.RawMessage `json:"-"`
}

type plainListsProfile ListsProfile

// UnmarshalJSON implements [json.Unmarshaler]. A summary that is not an
// object fails the document.
func (p *ListsProfile) UnmarshalJSON(b []byte) error {
	members, ok := objectMembers(b)
	if !ok {
		return fmt.Errorf("lists index: expected an object, got %.20s", bytes.TrimSpace(b))
	}

	*p = ListsProfile{}
	if raw, found := members["shoppingLists"]; found {
		if err := json.Unmarshal(raw, &p.ShoppingLists); err != nil {
			return fmt.Errorf("lists index: %w", err)
		}
		delete(members, "shoppingLists")
	}
	if len(members) > 0 {
		p.Extra = members
	}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (p ListsProfile) MarshalJSON() ([]byte, error) {
	return encodeMembers(plainListsProfile(p), p.Extra)
}

// MergeResult reports the outcome of promoting local-staging lists to the
// remote store.
type MergeResult struct {
	Success     bool `json:"success"`
	MergedLists int  `json:"mergedLists"`
}
