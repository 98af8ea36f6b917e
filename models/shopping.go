package models

// Record types and zone of the shopping-list hierarchy.
const (
	RecordTypeShoppingList = "ShoppingList"
	RecordTypeShoppingItem = "ShoppingItem"
	ShoppingZoneName       = "ShoppingListsZone"

	listFieldName    = "name"
	listFieldDate    = "date"
	listFieldComment = "comment"
	listFieldItems   = "items"

	itemFieldGoodName  = "goodName"
	itemFieldStoreName = "storeName"
	itemFieldQuantity  = "quantity"
	itemFieldPurchased = "purchased"
)

// syncState carries the bookkeeping every syncable entity needs. Embedded by
// the concrete entity kinds.
type syncState struct {
	recordName   string
	zone         ZoneID
	remoteOrigin bool
}

func (s *syncState) RecordName() string          { return s.recordName }
func (s *syncState) SetRecordName(name string)   { s.recordName = name }
func (s *syncState) Zone() ZoneID                { return s.zone }
func (s *syncState) SetZone(zone ZoneID)         { s.zone = zone }
func (s *syncState) RemoteOrigin() bool          { return s.remoteOrigin }
func (s *syncState) SetRemoteOrigin(remote bool) { s.remoteOrigin = remote }

// ShoppingList is the root entity of the hierarchy: a list with its items as
// dependents.
type ShoppingList struct {
	syncState

	Name    string
	Date    float64
	Comment string

	items []SyncableItem
}

// PopulateRecord implements SyncableItem.
func (l *ShoppingList) PopulateRecord(r *Record) {
	r.SetField(listFieldName, TextValue(l.Name))
	r.SetField(listFieldDate, NumberValue(l.Date))
	r.SetField(listFieldComment, TextValue(l.Comment))
}

// ApplyRecord implements SyncableItem.
func (l *ShoppingList) ApplyRecord(r *Record) {
	l.Name = r.TextField(listFieldName)
	l.Date = r.NumberField(listFieldDate)
	l.Comment = r.TextField(listFieldComment)
}

// AppendDependent implements SyncableItem.
func (l *ShoppingList) AppendDependent(child SyncableItem) {
	l.items = append(l.items, child)
}

// Dependents implements SyncableItem.
func (l *ShoppingList) Dependents() []SyncableItem { return l.items }

// SetDependents replaces the attached items, used when assembling a list for
// a push.
func (l *ShoppingList) SetDependents(items []SyncableItem) { l.items = items }

// ShoppingItem is a dependent entity owned by a ShoppingList.
type ShoppingItem struct {
	syncState

	GoodName  string
	StoreName string
	Quantity  float64
	Purchased bool
}

// PopulateRecord implements SyncableItem.
func (i *ShoppingItem) PopulateRecord(r *Record) {
	r.SetField(itemFieldGoodName, TextValue(i.GoodName))
	r.SetField(itemFieldStoreName, TextValue(i.StoreName))
	r.SetField(itemFieldQuantity, NumberValue(i.Quantity))
	r.SetField(itemFieldPurchased, FlagValue(i.Purchased))
}

// ApplyRecord implements SyncableItem.
func (i *ShoppingItem) ApplyRecord(r *Record) {
	i.GoodName = r.TextField(itemFieldGoodName)
	i.StoreName = r.TextField(itemFieldStoreName)
	i.Quantity = r.NumberField(itemFieldQuantity)
	i.Purchased = r.FlagField(itemFieldPurchased)
}

// AppendDependent implements SyncableItem. Items are leaves.
func (i *ShoppingItem) AppendDependent(SyncableItem) {}

// Dependents implements SyncableItem.
func (i *ShoppingItem) Dependents() []SyncableItem { return nil }

// ShoppingItemDescriptor describes the dependent item kind.
func ShoppingItemDescriptor() *EntityDescriptor {
	return &EntityDescriptor{
		RecordType: RecordTypeShoppingItem,
		ZoneName:   ShoppingZoneName,
		New:        func() SyncableItem { return &ShoppingItem{} },
	}
}

// ShoppingListDescriptor describes the root list kind with its dependent
// item kind.
func ShoppingListDescriptor() *EntityDescriptor {
	return &EntityDescriptor{
		RecordType:     RecordTypeShoppingList,
		ZoneName:       ShoppingZoneName,
		DependentField: listFieldItems,
		Dependent:      ShoppingItemDescriptor(),
		New:            func() SyncableItem { return &ShoppingList{} },
	}
}
