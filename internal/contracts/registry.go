package contracts

import (
	"fmt"
	"net/url"
	"sort"
)

// Operation names a contract view.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpQuery  Operation = "query"
)

// UpdateKind distinguishes derived partial updates from hand-written narrow patches.
type UpdateKind string

const (
	UpdateNone    UpdateKind = ""
	UpdatePartial UpdateKind = "partial"
	UpdateNarrow  UpdateKind = "narrow"
)

// Contract groups the views of one entity. Auth inputs only carry Create.
type Contract struct {
	Name       string
	Create     BodySchema
	Update     BodySchema
	UpdateKind UpdateKind
	Query      QueryParser
}

// Operations lists the views the contract supports.
func (c Contract) Operations() []Operation {
	var ops []Operation
	if c.Create != nil {
		ops = append(ops, OpCreate)
	}
	if c.Update != nil {
		ops = append(ops, OpUpdate)
	}
	if c.Query != nil {
		ops = append(ops, OpQuery)
	}
	return ops
}

// Descriptor summarizes a contract for listings.
type Descriptor struct {
	Name       string      `json:"name"`
	Operations []Operation `json:"operations"`
	UpdateKind UpdateKind  `json:"updateKind,omitempty"`
}

// Describe reports the views of the contract.
func (c Contract) Describe() Descriptor {
	return Descriptor{Name: c.Name, Operations: c.Operations(), UpdateKind: c.UpdateKind}
}

// Catalog maps entity names to their contracts. It is read-only after construction.
type Catalog struct {
	contracts map[string]Contract
	names     []string
}

// NewCatalog indexes the given contracts by name. Duplicate names panic since the catalog
// is assembled at package init.
func NewCatalog(contracts ...Contract) *Catalog {
	c := &Catalog{contracts: make(map[string]Contract, len(contracts))}
	for _, ct := range contracts {
		if _, dup := c.contracts[ct.Name]; dup {
			panic(fmt.Sprintf("contracts: duplicate entity %q", ct.Name))
		}
		c.contracts[ct.Name] = ct
		c.names = append(c.names, ct.Name)
	}
	sort.Strings(c.names)
	return c
}

// Lookup returns the contract registered for entity.
func (c *Catalog) Lookup(entity string) (Contract, error) {
	ct, ok := c.contracts[entity]
	if !ok {
		return Contract{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return ct, nil
}

// Entities returns the registered names in sorted order.
func (c *Catalog) Entities() []string {
	return append([]string(nil), c.names...)
}

// Describe returns the descriptor of entity.
func (c *Catalog) Describe(entity string) (Descriptor, error) {
	ct, err := c.Lookup(entity)
	if err != nil {
		return Descriptor{}, err
	}
	return ct.Describe(), nil
}

// Descriptors describes every contract in name order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.contracts[name].Describe())
	}
	return out
}

// ValidateCreate validates a create payload for entity.
func (c *Catalog) ValidateCreate(entity string, data []byte) (any, error) {
	ct, err := c.Lookup(entity)
	if err != nil {
		return nil, err
	}
	if ct.Create == nil {
		return nil, unsupported(entity, OpCreate)
	}
	return ct.Create.ParseAny(data)
}

// ValidateUpdate validates an update payload for entity.
func (c *Catalog) ValidateUpdate(entity string, data []byte) (any, error) {
	ct, err := c.Lookup(entity)
	if err != nil {
		return nil, err
	}
	if ct.Update == nil {
		return nil, unsupported(entity, OpUpdate)
	}
	return ct.Update.ParseAny(data)
}

// ValidateQuery validates list query parameters for entity.
func (c *Catalog) ValidateQuery(entity string, values url.Values) (any, error) {
	ct, err := c.Lookup(entity)
	if err != nil {
		return nil, err
	}
	if ct.Query == nil {
		return nil, unsupported(entity, OpQuery)
	}
	return ct.Query.ParseAny(values)
}

func unsupported(entity string, op Operation) error {
	return fmt.Errorf("%w: %s %s", ErrUnsupportedOperation, entity, op)
}

// Default is the process-wide catalog of every entity and auth input contract.
var Default = NewCatalog(
	invoiceContract,
	supplierContract,
	purchaseOrderContract,
	expenseContract,
	contractContract,
	paymentBatchContract,
	userContract,
	approvalWorkflowContract,
	virtualCardContract,
	scfProgramContract,
	reportContract,
	erpConnectionContract,
	webhookContract,
	featureFlagContract,
	apiKeyContract,
	supplierConversationContract,
	conversationMessageContract,
	tenantContract,
	notificationContract,
	riskAlertContract,
	auditLogContract,
	cashFlowForecastContract,
	expensePolicyContract,
	loginContract,
	registerContract,
	supplierLoginContract,
	magicLinkContract,
)

// ValidateCreate validates a create payload against the Default catalog.
func ValidateCreate(entity string, data []byte) (any, error) {
	return Default.ValidateCreate(entity, data)
}

// ValidateUpdate validates an update payload against the Default catalog.
func ValidateUpdate(entity string, data []byte) (any, error) {
	return Default.ValidateUpdate(entity, data)
}

// ValidateQuery validates query parameters against the Default catalog.
func ValidateQuery(entity string, values url.Values) (any, error) {
	return Default.ValidateQuery(entity, values)
}
