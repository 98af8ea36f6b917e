// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"testing"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testNode is a minimal syncable entity used to exercise hierarchies deeper
// than the shopping-list domain provides.
type testNode struct {
	name   string
	zone   models.ZoneID
	remote bool

	Label string

	children []models.SyncableItem
}

func (n *testNode) RecordName() string              { return n.name }
func (n *testNode) SetRecordName(name string)       { n.name = name }
func (n *testNode) Zone() models.ZoneID             { return n.zone }
func (n *testNode) SetZone(zone models.ZoneID)      { n.zone = zone }
func (n *testNode) RemoteOrigin() bool              { return n.remote }
func (n *testNode) SetRemoteOrigin(remote bool)     { n.remote = remote }
func (n *testNode) PopulateRecord(r *models.Record) { r.SetField("label", models.TextValue(n.Label)) }
func (n *testNode) ApplyRecord(r *models.Record)    { n.Label = r.TextField("label") }
func (n *testNode) AppendDependent(c models.SyncableItem) {
	n.children = append(n.children, c)
}
func (n *testNode) Dependents() []models.SyncableItem { return n.children }

// threeLevelDescriptor declares a grandparent -> parent -> child hierarchy.
func threeLevelDescriptor() *models.EntityDescriptor {
	child := &models.EntityDescriptor{
		RecordType: "TestChild",
		ZoneName:   "TestZone",
		New:        func() models.SyncableItem { return &testNode{} },
	}
	parent := &models.EntityDescriptor{
		RecordType:     "TestParent",
		ZoneName:       "TestZone",
		DependentField: "children",
		Dependent:      child,
		New:            func() models.SyncableItem { return &testNode{} },
	}
	return &models.EntityDescriptor{
		RecordType:     "TestGrandparent",
		ZoneName:       "TestZone",
		DependentField: "children",
		Dependent:      parent,
		New:            func() models.SyncableItem { return &testNode{} },
	}
}

func listRecord(name string, listName string) models.Record {
	rec := models.NewRecord(models.RecordTypeShoppingList, models.RecordID{RecordName: name, Zone: zoneZ1})
	rec.SetField("name", models.TextValue(listName))
	return rec
}

func itemRecord(name, goodName, parent string) models.Record {
	rec := models.NewRecord(models.RecordTypeShoppingItem, models.RecordID{RecordName: name, Zone: zoneZ1})
	rec.SetField("goodName", models.TextValue(goodName))
	rec.Parent = &models.Reference{
		Record: models.RecordID{RecordName: parent, Zone: zoneZ1},
		Action: models.ReferenceActionDeleteSelf,
	}
	return rec
}

func TestMaterialize_TwoLevelHierarchy(t *testing.T) {
	te := newTestEngine(t)

	records := []models.Record{
		listRecord("L1", "Groceries"),
		itemRecord("I1", "Milk", "L1"),
		itemRecord("I2", "Bread", "L1"),
		models.NewRecord("UnrelatedType", models.RecordID{RecordName: "X1", Zone: zoneZ1}),
	}

	entities, err := te.engine.materialize(context.Background(), records, models.ShoppingListDescriptor(), true)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	list, ok := entities[0].(*models.ShoppingList)
	require.True(t, ok)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, "L1", list.RecordName())
	assert.Equal(t, zoneZ1, list.Zone())
	assert.True(t, list.RemoteOrigin())

	require.Len(t, list.Dependents(), 2)
	first, ok := list.Dependents()[0].(*models.ShoppingItem)
	require.True(t, ok)
	assert.Equal(t, "Milk", first.GoodName)
	assert.True(t, first.RemoteOrigin())
}

func TestMaterialize_DependentsFilteredByParent(t *testing.T) {
	te := newTestEngine(t)

	records := []models.Record{
		listRecord("L1", "Groceries"),
		listRecord("L2", "Hardware"),
		itemRecord("I1", "Milk", "L1"),
		itemRecord("I2", "Nails", "L2"),
	}

	entities, err := te.engine.materialize(context.Background(), records, models.ShoppingListDescriptor(), true)
	require.NoError(t, err)
	require.Len(t, entities, 2)

	groceries := entities[0].(*models.ShoppingList)
	hardware := entities[1].(*models.ShoppingList)
	require.Len(t, groceries.Dependents(), 1)
	require.Len(t, hardware.Dependents(), 1)
	assert.Equal(t, "Milk", groceries.Dependents()[0].(*models.ShoppingItem).GoodName)
	assert.Equal(t, "Nails", hardware.Dependents()[0].(*models.ShoppingItem).GoodName)
}

func TestMaterialize_RepeatedPullKeepsDependentsStable(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()
	desc := models.ShoppingListDescriptor()

	records := []models.Record{
		listRecord("L1", "Groceries"),
		itemRecord("I1", "Milk", "L1"),
		itemRecord("I2", "Bread", "L1"),
	}

	first, err := te.engine.materialize(ctx, records, desc, true)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, first[0].Dependents(), 2)

	// Editing a list re-reports it with its items on the next pull.
	second, err := te.engine.materialize(ctx, records, desc, true)
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Same(t, first[0], second[0])
	require.Len(t, second[0].Dependents(), 2, "a repeated pull updates attached items in place instead of re-attaching them")
	assert.Same(t, first[0].Dependents()[0], second[0].Dependents()[0])
}

func TestMaterialize_DuplicateRecordsCollapse(t *testing.T) {
	te := newTestEngine(t)

	// A retried zone round re-delivers records already accumulated in the
	// same list.
	records := []models.Record{
		listRecord("L1", "Groceries"),
		itemRecord("I1", "Milk", "L1"),
		listRecord("L1", "Groceries renamed"),
		itemRecord("I1", "Oat milk", "L1"),
	}

	entities, err := te.engine.materialize(context.Background(), records, models.ShoppingListDescriptor(), true)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	list := entities[0].(*models.ShoppingList)
	assert.Equal(t, "Groceries renamed", list.Name, "the later duplicate wins")
	require.Len(t, list.Dependents(), 1)
	assert.Equal(t, "Oat milk", list.Dependents()[0].(*models.ShoppingItem).GoodName)
}

func TestMaterialize_SameRecordNameReusesEntity(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	first, err := te.engine.materialize(ctx, []models.Record{listRecord("L1", "Groceries")}, models.ShoppingListDescriptor(), true)
	require.NoError(t, err)

	second, err := te.engine.materialize(ctx, []models.Record{listRecord("L1", "Renamed")}, models.ShoppingListDescriptor(), true)
	require.NoError(t, err)

	assert.Same(t, first[0], second[0], "materializing the same record name twice updates one entity in place")
	assert.Equal(t, "Renamed", second[0].(*models.ShoppingList).Name)
}

func TestDecompose_FreshHierarchyMintsIdentifiers(t *testing.T) {
	te := newTestEngine(t)

	list := &models.ShoppingList{Name: "Groceries", Comment: "weekly"}
	milk := &models.ShoppingItem{GoodName: "Milk", Quantity: 2}
	bread := &models.ShoppingItem{GoodName: "Bread", Purchased: true}
	list.SetDependents([]models.SyncableItem{milk, bread})

	root, dependents, err := te.engine.decompose(context.Background(), list, models.ShoppingListDescriptor(), models.ScopePrivate)
	require.NoError(t, err)

	assert.NotEmpty(t, root.ID.RecordName)
	assert.Equal(t, root.ID.RecordName, list.RecordName(), "minted name is stamped back onto the entity")
	assert.Equal(t, models.RecordTypeShoppingList, root.RecordType)
	assert.Equal(t, models.ShoppingZoneName, root.ID.Zone.ZoneName)
	assert.Equal(t, "Groceries", root.TextField("name"))

	require.Len(t, dependents, 2)
	refs := root.ReferenceListField("items")
	require.Len(t, refs, 2)
	for i, dep := range dependents {
		assert.Equal(t, dep.ID, refs[i].Record)
		assert.Equal(t, models.ReferenceActionDeleteSelf, refs[i].Action)
		require.NotNil(t, dep.Parent)
		assert.Equal(t, root.ID, dep.Parent.Record)
		assert.Equal(t, models.ReferenceActionDeleteSelf, dep.Parent.Action)
	}
	assert.Equal(t, "Milk", dependents[0].TextField("goodName"))
	assert.Equal(t, float64(2), dependents[0].NumberField("quantity"))
	assert.True(t, dependents[1].FlagField("purchased"))
}

func TestDecompose_ExistingEntityRefetchesRecord(t *testing.T) {
	te := newTestEngine(t)

	list := &models.ShoppingList{Name: "Renamed"}
	list.SetRecordName("L1")
	list.SetZone(models.ZoneID{ZoneName: models.ShoppingZoneName})

	remoteRec := models.NewRecord(models.RecordTypeShoppingList, models.RecordID{
		RecordName: "L1",
		Zone:       models.ZoneID{ZoneName: models.ShoppingZoneName},
	})
	remoteRec.SetField("name", models.TextValue("Old name"))
	remoteRec.SetField("serverOwned", models.NumberValue(42))

	te.remote.EXPECT().
		FetchRecords(gomock.Any(), []models.RecordID{remoteRec.ID}, models.ScopePrivate).
		Return([]models.Record{remoteRec}, nil)

	root, dependents, err := te.engine.decompose(context.Background(), list, models.ShoppingListDescriptor(), models.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, dependents)
	assert.Equal(t, "Renamed", root.TextField("name"))
	assert.Equal(t, float64(42), root.NumberField("serverOwned"), "fields the engine does not own survive a repopulate")
}

func TestHierarchicalRoundTrip_ThreeLevels(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()
	desc := threeLevelDescriptor()

	child := &testNode{Label: "child"}
	parent := &testNode{Label: "parent", children: []models.SyncableItem{child}}
	grand := &testNode{Label: "grandparent", children: []models.SyncableItem{parent}}

	root, dependents, err := te.engine.decompose(ctx, grand, desc, models.ScopePrivate)
	require.NoError(t, err)
	require.Len(t, dependents, 2, "parent and child records")

	// Rebuild from the flat record set on a fresh engine with its own
	// entity store.
	other := newTestEngine(t)
	all := append([]models.Record{root}, dependents...)
	entities, err := other.engine.materialize(ctx, all, desc, false)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	gotGrand := entities[0].(*testNode)
	assert.Equal(t, "grandparent", gotGrand.Label)
	assert.Equal(t, grand.RecordName(), gotGrand.RecordName())
	require.Len(t, gotGrand.Dependents(), 1)

	gotParent := gotGrand.Dependents()[0].(*testNode)
	assert.Equal(t, "parent", gotParent.Label)
	require.Len(t, gotParent.Dependents(), 1)

	gotChild := gotParent.Dependents()[0].(*testNode)
	assert.Equal(t, "child", gotChild.Label)
	assert.Empty(t, gotChild.Dependents())
	assert.False(t, gotChild.RemoteOrigin())
}

func TestMaterialize_NilDescriptor(t *testing.T) {
	te := newTestEngine(t)

	_, err := te.engine.materialize(context.Background(), nil, nil, true)
	assert.ErrorIs(t, err, ErrNilDescriptor)
}
