package document

import (
	"context"
)

var MockWriteResult = WriteResult{
	Ok:  true,
	ID:  "mock",
	Rev: "1-mock",
}

var MockDocument = Document{
	IdKey:  "mock",
	RevKey: "1-mock",
	"name": "Alice",
}

type MockDocumentsService struct {
	CreateCalled   uint
	CreateOverride func() (*WriteResult, error)
	ListCalled     uint
	ListOverride   func() ([]Document, error)
	PutCalled      uint
	PutOverride    func() (*WriteResult, error)
	DeleteCalled   uint
	DeleteOverride func() (*WriteResult, error)

	LastId  *Id
	LastRev *Rev
	LastDoc Document
}

func (m *MockDocumentsService) Create(ctx context.Context, doc Document) (*WriteResult, error) {
	m.CreateCalled++
	m.LastDoc = doc
	if m.CreateOverride != nil {
		return m.CreateOverride()
	} else {
		return &MockWriteResult, nil
	}
}

func (m *MockDocumentsService) List(ctx context.Context) ([]Document, error) {
	m.ListCalled++
	if m.ListOverride != nil {
		return m.ListOverride()
	} else {
		return []Document{MockDocument}, nil
	}
}

func (m *MockDocumentsService) Put(ctx context.Context, id Id, rev *Rev, doc Document) (*WriteResult, error) {
	m.PutCalled++
	m.LastId = &id
	m.LastRev = rev
	m.LastDoc = doc
	if m.PutOverride != nil {
		return m.PutOverride()
	} else {
		return &MockWriteResult, nil
	}
}

func (m *MockDocumentsService) Delete(ctx context.Context, id Id, rev *Rev) (*WriteResult, error) {
	m.DeleteCalled++
	m.LastId = &id
	m.LastRev = rev
	if m.DeleteOverride != nil {
		return m.DeleteOverride()
	} else {
		return &MockWriteResult, nil
	}
}
