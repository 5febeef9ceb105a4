package auth

// Permission keys for payment operations.
const (
	PermPaymentCreate  = "payments.create"
	PermPaymentListOwn = "payments.list.own"
	PermPaymentListAll = "payments.list.all"
	PermPaymentVerify  = "payments.verify"
	PermPaymentSubmit  = "payments.submit"
	PermPaymentEvents  = "payments.events"
)

// rolePermissions is the static policy table. Customers operate on their own
// payments only; employees review, release, and observe everything.
var rolePermissions = map[Role]map[string]struct{}{
	RoleCustomer: {
		PermPaymentCreate:  {},
		PermPaymentListOwn: {},
	},
	RoleEmployee: {
		PermPaymentCreate:  {},
		PermPaymentListOwn: {},
		PermPaymentListAll: {},
		PermPaymentVerify:  {},
		PermPaymentSubmit:  {},
		PermPaymentEvents:  {},
	},
}
