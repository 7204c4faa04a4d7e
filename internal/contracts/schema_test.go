package contracts

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyNormalizationIsIdempotent(t *testing.T) {
	first, err := CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":120.5,"currency":"usd"}`))
	require.NoError(t, err)
	assert.Equal(t, Currency("USD"), first.Currency)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := CreateInvoiceSchema.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCurrencyRejectsNonLetters(t *testing.T) {
	for _, code := range []string{"US", "USDX", "U$D", "12A"} {
		_, err := CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":1,"currency":"` + code + `"}`))
		fe, ok := AsFieldErrors(err)
		require.True(t, ok, code)
		assert.Equal(t, []string{"Currency must be a 3-letter code"}, fe.ByPath("currency"), code)
	}
}

func TestErrorsAreCollectedInDeclarationOrder(t *testing.T) {
	_, err := CreateInvoiceSchema.Parse([]byte(`{"currency":"us","totalAmount":-5,"invoiceNumber":""}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 4)
	assert.Equal(t, FieldError{Path: []string{"invoiceNumber"}, Message: "Required"}, fe[0])
	assert.Equal(t, FieldError{Path: []string{"vendorName"}, Message: "Required"}, fe[1])
	assert.Equal(t, FieldError{Path: []string{"totalAmount"}, Message: "Must be a positive number"}, fe[2])
	assert.Equal(t, FieldError{Path: []string{"currency"}, Message: "Currency must be a 3-letter code"}, fe[3])
}

func TestTypeErrorsDoNotStopOtherFields(t *testing.T) {
	_, err := CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":7,"vendorName":"Acme","totalAmount":"abc","sourceType":"fax"}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 3)
	assert.Equal(t, FieldError{Path: []string{"invoiceNumber"}, Message: "Expected string, received number"}, fe[0])
	assert.Equal(t, FieldError{Path: []string{"totalAmount"}, Message: "Expected number, received string"}, fe[1])
	assert.Equal(t, []string{"sourceType"}, fe[2].Path)
	assert.Equal(t, "Invalid enum value. Expected 'email' | 'upload' | 'api' | 'network'", fe[2].Message)
}

func TestNestedPathsUseJSONNames(t *testing.T) {
	_, err := CreateInvoiceSchema.Parse([]byte(`{
		"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":10,
		"lineItems":[{"quantity":1,"unitPrice":5,"totalAmount":5},{"quantity":0,"unitPrice":5,"totalAmount":-1}]
	}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 2)
	assert.Equal(t, []string{"lineItems", "1", "quantity"}, fe[0].Path)
	assert.Equal(t, "Must be a positive number", fe[0].Message)
	assert.Equal(t, []string{"lineItems", "1", "totalAmount"}, fe[1].Path)
	assert.Equal(t, "Must be a positive number", fe[1].Message)

	_, err = CreateInvoiceSchema.Parse([]byte(`{
		"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":10,
		"lineItems":[{"quantity":1,"unitPrice":5,"totalAmount":5},{"quantity":"x","unitPrice":5,"totalAmount":5}]
	}`))
	fe, ok = AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"lineItems", "1", "quantity"}, Message: "Expected number, received string"}}, fe)

	_, err = CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":10,"lineItems":[{"quantity":1,"unitPrice":5,"totalAmount":5},"oops"]}`))
	fe, ok = AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"lineItems", "1"}, Message: "Expected object, received string"}}, fe)
}

func TestSuppliedZeroReportsTheBound(t *testing.T) {
	_, err := CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":0}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"totalAmount"}, Message: "Must be a positive number"}}, fe)

	_, err = UpdateInvoiceSchema.Parse([]byte(`{"totalAmount":0}`))
	fe, ok = AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"totalAmount"}, Message: "Must be a positive number"}}, fe)

	_, err = CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"","vendorName":"Acme","totalAmount":1}`))
	fe, ok = AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"invoiceNumber"}, Message: "Required"}}, fe)
}

func TestPatchKeepsEmptyCollections(t *testing.T) {
	patch, err := UpdateFeatureFlagSchema.Parse([]byte(`{"tenantIds":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"tenantIds"}, patch.Fields)
	encoded, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tenantIds":[]}`, string(encoded))

	tenant, err := UpdateTenantSchema.Parse([]byte(`{"settings":{},"isActive":false}`))
	require.NoError(t, err)
	encoded, err = json.Marshal(tenant)
	require.NoError(t, err)
	assert.JSONEq(t, `{"settings":{},"isActive":false}`, string(encoded))
}

func TestLineItemAmountsAreIndependent(t *testing.T) {
	out, err := CreateInvoiceSchema.Parse([]byte(`{
		"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":10,
		"lineItems":[{"quantity":2,"unitPrice":5,"totalAmount":99}]
	}`))
	require.NoError(t, err)
	require.Len(t, out.LineItems, 1)
	assert.Equal(t, 99.0, out.LineItems[0].TotalAmount)
}

func TestBodyMustBeAnObject(t *testing.T) {
	cases := map[string]string{
		`[1,2]`:    "Expected object, received array",
		`"text"`:   "Expected object, received string",
		`null`:     "Expected object, received null",
		``:         "Expected object, received nothing",
		`{"a":`:    "Malformed JSON",
		`not json`: "Malformed JSON",
	}
	for body, want := range cases {
		_, err := CreateSupplierSchema.Parse([]byte(body))
		fe, ok := AsFieldErrors(err)
		require.True(t, ok, body)
		require.Len(t, fe, 1, body)
		assert.Empty(t, fe[0].Path, body)
		assert.Equal(t, want, fe[0].Message, body)
	}
}

func TestUnknownKeysAreStripped(t *testing.T) {
	out, err := CreateSupplierSchema.Parse([]byte(`{"name":"Acme","tenantId":"t-1"}`))
	require.NoError(t, err)
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "tenantId")
}

func TestDefaultsOnlyFillAbsentKeys(t *testing.T) {
	out, err := CreateSupplierSchema.Parse([]byte(`{"name":"Acme","isActive":false,"paymentTerms":0}`))
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, 0, out.PaymentTerms)
	assert.Equal(t, PaymentACH, out.PreferredPaymentMethod)
	assert.Equal(t, Currency(DefaultCurrency), out.Currency)
}

func TestPartialValidatesOnlyPresentFields(t *testing.T) {
	patch, err := UpdateInvoiceSchema.Parse([]byte(`{"currency":"eur","status":"approved"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"currency", "status"}, patch.Fields)
	assert.True(t, patch.Has("status"))
	assert.False(t, patch.Has("sourceType"))
	assert.Equal(t, Currency("EUR"), patch.Value.Currency)

	encoded, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"EUR","status":"approved"}`, string(encoded))
}

func TestPartialAppliesCreateRules(t *testing.T) {
	_, createErr := CreateInvoiceSchema.Parse([]byte(`{"invoiceNumber":"INV-1","vendorName":"Acme","totalAmount":-5}`))
	_, updateErr := UpdateInvoiceSchema.Parse([]byte(`{"totalAmount":-5}`))

	createFE, ok := AsFieldErrors(createErr)
	require.True(t, ok)
	updateFE, ok := AsFieldErrors(updateErr)
	require.True(t, ok)
	assert.Equal(t, createFE, updateFE)
}

func TestPartialRejectsUnknownStatus(t *testing.T) {
	_, err := UpdateInvoiceSchema.Parse([]byte(`{"status":"archived"}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 1)
	assert.Equal(t, []string{"status"}, fe[0].Path)
}

func TestNullCountsAsAbsent(t *testing.T) {
	_, err := UpdateInvoiceSchema.Parse([]byte(`{"vendorName":null}`))
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{}, Message: MsgNoFieldsForUpdate}}, fe)
}

func TestPartialSkipsDefaults(t *testing.T) {
	patch, err := UpdateSupplierSchema.Parse([]byte(`{"name":"Renamed"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, patch.Fields)
	assert.Empty(t, patch.Value.Currency)
	assert.False(t, patch.Value.IsActive)
}

func TestQueryCoercionAndDefaults(t *testing.T) {
	q, err := InvoiceQuerySchema.Parse(url.Values{"page": {"2"}, "limit": {"50"}})
	require.NoError(t, err)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, SortDesc, q.SortOrder)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Nil(t, q.Search)

	encoded, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":2,"limit":50,"sortOrder":"desc","sortBy":"createdAt"}`, string(encoded))
}

func TestQueryLimitBounds(t *testing.T) {
	_, err := InvoiceQuerySchema.Parse(url.Values{"limit": {"500"}})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, FieldErrors{{Path: []string{"limit"}, Message: "Must be less than or equal to 100"}}, fe)

	_, err = InvoiceQuerySchema.Parse(url.Values{"page": {"0"}})
	fe, ok = AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Must be greater than or equal to 1"}, fe.ByPath("page"))
}

func TestQueryTypeErrors(t *testing.T) {
	_, err := InvoiceQuerySchema.Parse(url.Values{"page": {"two"}, "minAmount": {"lots"}})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 2)
	assert.Equal(t, FieldError{Path: []string{"minAmount"}, Message: "Expected number, received string"}, fe[0])
	assert.Equal(t, FieldError{Path: []string{"page"}, Message: "Expected integer, received string"}, fe[1])
}

func TestQueryFiltersAndRawDateRange(t *testing.T) {
	q, err := SupplierQuerySchema.Parse(url.Values{"isActive": {"false"}, "riskLevel": {"HIGH"}, "sortBy": {"name"}, "sortOrder": {"asc"}})
	require.NoError(t, err)
	require.NotNil(t, q.IsActive)
	assert.False(t, *q.IsActive)
	assert.Equal(t, RiskHigh, *q.RiskLevel)
	assert.Equal(t, SortAsc, q.SortOrder)

	inv, err := InvoiceQuerySchema.Parse(url.Values{"from": {"last tuesday"}, "to": {"2024-13-45"}, "minAmount": {"12.5"}})
	require.NoError(t, err)
	assert.Equal(t, "last tuesday", *inv.From)
	assert.Equal(t, "2024-13-45", *inv.To)
	assert.Equal(t, 12.5, *inv.MinAmount)
}

func TestQuerySortByIsClosed(t *testing.T) {
	_, err := InvoiceQuerySchema.Parse(url.Values{"sortBy": {"password"}})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe.ByPath("sortBy"), 1)
}

func TestQueryEmptyValuesAreAbsent(t *testing.T) {
	q, err := InvoiceQuerySchema.Parse(url.Values{"page": {""}, "search": {"  "}})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Nil(t, q.Search)
}

func TestPrimitiveRules(t *testing.T) {
	cases := []struct {
		name string
		body string
		path string
		want string
	}{
		{"uuid", `{"poNumber":"PO-1","supplierId":"1234","totalAmount":1}`, "supplierId", "Invalid UUID"},
		{"uuid braces", `{"poNumber":"PO-1","supplierId":"{9b2c3f6e-8d1a-4b7e-9c0d-1e2f3a4b5c6d}","totalAmount":1}`, "supplierId", "Invalid UUID"},
		{"iso date", `{"poNumber":"PO-1","supplierId":"9b2c3f6e-8d1a-4b7e-9c0d-1e2f3a4b5c6d","totalAmount":1,"orderDate":"05/01/2024"}`, "orderDate", "Invalid ISO date string"},
		{"email", `{"name":"Acme","email":"not-an-email"}`, "email", "Invalid email address"},
		{"non-negative", `{"name":"Acme","paymentTerms":-1}`, "paymentTerms", "Must be a non-negative number"},
		{"length", `{"name":"Acme","country":"USA"}`, "country", "Must be exactly 2 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if strings.Contains(tc.body, "poNumber") {
				_, err = CreatePurchaseOrderSchema.Parse([]byte(tc.body))
			} else {
				_, err = CreateSupplierSchema.Parse([]byte(tc.body))
			}
			fe, ok := AsFieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{tc.want}, fe.ByPath(tc.path))
		})
	}
}

func TestISODateAcceptsOffsetsAndFractions(t *testing.T) {
	for _, ts := range []string{"2024-05-01T10:00:00Z", "2024-05-01T10:00:00.123Z", "2024-05-01T10:00:00+02:00"} {
		_, err := CreatePurchaseOrderSchema.Parse([]byte(`{"poNumber":"PO-1","supplierId":"9b2c3f6e-8d1a-4b7e-9c0d-1e2f3a4b5c6d","totalAmount":1,"orderDate":"` + ts + `"}`))
		assert.NoError(t, err, ts)
	}
}

func TestFieldErrorsString(t *testing.T) {
	fe := FieldErrors{
		{Path: []string{"lineItems", "0", "quantity"}, Message: "Required"},
		{Path: []string{}, Message: MsgNoFieldsForUpdate},
	}
	assert.Equal(t, "validation failed: lineItems.0.quantity: Required; "+MsgNoFieldsForUpdate, fe.Error())
	assert.Equal(t, []string{MsgNoFieldsForUpdate}, fe.ByPath(""))
}
