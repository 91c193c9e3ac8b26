package services_test

import (
	"context"
	"testing"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/core/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FeeRepository ---
type MockFeeRepository struct {
	mock.Mock
	CreatePaymentFn        func(ctx context.Context, fee domain.Fee) (*domain.Fee, error)
	SetInvoicePathFn       func(ctx context.Context, receiptID, path string) error
	FindFeeByReceiptIDFn   func(ctx context.Context, receiptID string) (*domain.Fee, error)
	ListRecentFeesFn       func(ctx context.Context, limit int) ([]domain.Fee, error)
	ListFeesByStudentRefFn func(ctx context.Context, studentRefID int64) ([]domain.Fee, error)
	SumFeeAmountsFn        func(ctx context.Context) (decimal.Decimal, error)
	ListAllFeesFn          func(ctx context.Context) ([]domain.Fee, error)
}

func (m *MockFeeRepository) CreatePayment(ctx context.Context, fee domain.Fee) (*domain.Fee, error) {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, fee)
	}
	args := m.Called(ctx, fee)
	var out *domain.Fee
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Fee)
	}
	return out, args.Error(1)
}

func (m *MockFeeRepository) SetInvoicePath(ctx context.Context, receiptID, path string) error {
	if m.SetInvoicePathFn != nil {
		return m.SetInvoicePathFn(ctx, receiptID, path)
	}
	args := m.Called(ctx, receiptID, path)
	return args.Error(0)
}

func (m *MockFeeRepository) FindFeeByReceiptID(ctx context.Context, receiptID string) (*domain.Fee, error) {
	if m.FindFeeByReceiptIDFn != nil {
		return m.FindFeeByReceiptIDFn(ctx, receiptID)
	}
	args := m.Called(ctx, receiptID)
	var out *domain.Fee
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Fee)
	}
	return out, args.Error(1)
}

func (m *MockFeeRepository) ListRecentFees(ctx context.Context, limit int) ([]domain.Fee, error) {
	if m.ListRecentFeesFn != nil {
		return m.ListRecentFeesFn(ctx, limit)
	}
	args := m.Called(ctx, limit)
	var out []domain.Fee
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Fee)
	}
	return out, args.Error(1)
}

func (m *MockFeeRepository) ListFeesByStudentRef(ctx context.Context, studentRefID int64) ([]domain.Fee, error) {
	if m.ListFeesByStudentRefFn != nil {
		return m.ListFeesByStudentRefFn(ctx, studentRefID)
	}
	args := m.Called(ctx, studentRefID)
	var out []domain.Fee
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Fee)
	}
	return out, args.Error(1)
}

func (m *MockFeeRepository) SumFeeAmounts(ctx context.Context) (decimal.Decimal, error) {
	if m.SumFeeAmountsFn != nil {
		return m.SumFeeAmountsFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFeeRepository) ListAllFees(ctx context.Context) ([]domain.Fee, error) {
	if m.ListAllFeesFn != nil {
		return m.ListAllFeesFn(ctx)
	}
	args := m.Called(ctx)
	var out []domain.Fee
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Fee)
	}
	return out, args.Error(1)
}

// --- Mock StudentReader ---
type MockStudentReader struct {
	mock.Mock
	FindStudentByRefFn       func(ctx context.Context, ref string) (*domain.Student, error)
	FindStudentByStudentIDFn func(ctx context.Context, studentID string) (*domain.Student, error)
	SearchStudentsFn         func(ctx context.Context, query string, limit int) ([]domain.Student, error)
	CountStudentsFn          func(ctx context.Context) (int64, error)
	ListAllStudentsFn        func(ctx context.Context) ([]domain.Student, error)
	ListAllAdmissionsFn      func(ctx context.Context) ([]domain.Admission, error)
}

func (m *MockStudentReader) FindStudentByRef(ctx context.Context, ref string) (*domain.Student, error) {
	if m.FindStudentByRefFn != nil {
		return m.FindStudentByRefFn(ctx, ref)
	}
	args := m.Called(ctx, ref)
	var out *domain.Student
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentReader) FindStudentByStudentID(ctx context.Context, studentID string) (*domain.Student, error) {
	if m.FindStudentByStudentIDFn != nil {
		return m.FindStudentByStudentIDFn(ctx, studentID)
	}
	args := m.Called(ctx, studentID)
	var out *domain.Student
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentReader) SearchStudents(ctx context.Context, query string, limit int) ([]domain.Student, error) {
	if m.SearchStudentsFn != nil {
		return m.SearchStudentsFn(ctx, query, limit)
	}
	args := m.Called(ctx, query, limit)
	var out []domain.Student
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentReader) CountStudents(ctx context.Context) (int64, error) {
	if m.CountStudentsFn != nil {
		return m.CountStudentsFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentReader) ListAllStudents(ctx context.Context) ([]domain.Student, error) {
	if m.ListAllStudentsFn != nil {
		return m.ListAllStudentsFn(ctx)
	}
	args := m.Called(ctx)
	var out []domain.Student
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Student)
	}
	return out, args.Error(1)
}

func (m *MockStudentReader) ListAllAdmissions(ctx context.Context) ([]domain.Admission, error) {
	if m.ListAllAdmissionsFn != nil {
		return m.ListAllAdmissionsFn(ctx)
	}
	args := m.Called(ctx)
	var out []domain.Admission
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Admission)
	}
	return out, args.Error(1)
}

// --- Mock ReceiptRenderer ---
type MockReceiptRenderer struct {
	mock.Mock
	RenderFn func(fee domain.Fee) (string, error)
}

func (m *MockReceiptRenderer) Render(fee domain.Fee) (string, error) {
	if m.RenderFn != nil {
		return m.RenderFn(fee)
	}
	args := m.Called(fee)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptRenderer) Path(receiptID string) string {
	args := m.Called(receiptID)
	return args.String(0)
}

// --- Test Suite ---
type FeeServiceTestSuite struct {
	suite.Suite
	mockFeeRepo     *MockFeeRepository
	mockStudentRepo *MockStudentReader
	mockRenderer    *MockReceiptRenderer
	service         portssvc.FeeSvcFacade

	student domain.Student
}

func (suite *FeeServiceTestSuite) SetupTest() {
	suite.mockFeeRepo = new(MockFeeRepository)
	suite.mockStudentRepo = new(MockStudentReader)
	suite.mockRenderer = new(MockReceiptRenderer)
	suite.service = services.NewFeeService(suite.mockFeeRepo, suite.mockStudentRepo, suite.mockRenderer)

	suite.student = domain.Student{
		ID:        7,
		StudentID: "COLG24S12345",
		Name:      "Asha Verma",
		Email:     "asha@example.com",
	}
}

// ledgerBackedCreate returns a CreatePaymentFn that reproduces the store's
// running-balance rule: each row's balance is the previous row's balance
// minus the amount, starting from zero.
func ledgerBackedCreate(recorded *[]domain.Fee) func(ctx context.Context, fee domain.Fee) (*domain.Fee, error) {
	return func(_ context.Context, fee domain.Fee) (*domain.Fee, error) {
		prior := decimal.Zero
		if n := len(*recorded); n > 0 {
			prior = (*recorded)[n-1].BalanceAfter
		}
		fee.ID = int64(len(*recorded) + 1)
		fee.BalanceAfter = prior.Sub(fee.Amount)
		*recorded = append(*recorded, fee)
		return &fee, nil
	}
}

// --- RecordPayment Tests ---

func (suite *FeeServiceTestSuite) TestRecordPayment_RunningBalanceSequence() {
	ctx := context.Background()
	var recorded []domain.Fee
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}
	suite.mockFeeRepo.CreatePaymentFn = ledgerBackedCreate(&recorded)

	amounts := []string{"1000", "250.50", "99.99"}
	runningTotal := decimal.Zero
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
			StudentRef:  suite.student.StudentID,
			Amount:      amount,
			PaymentMode: domain.ModeCash,
			RecordedBy:  "accounts",
		})
		suite.Require().NoError(err)

		runningTotal = runningTotal.Add(amount)
		suite.True(fee.BalanceAfter.Equal(runningTotal.Neg()),
			"balance after payment should be the negated sum of amounts so far, got %s", fee.BalanceAfter)
	}
	suite.Len(recorded, len(amounts))
}

func (suite *FeeServiceTestSuite) TestRecordPayment_DefaultsPurposeAndTransactionID() {
	ctx := context.Background()
	var recorded []domain.Fee
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}
	suite.mockFeeRepo.CreatePaymentFn = ledgerBackedCreate(&recorded)

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:  suite.student.StudentID,
		Amount:      decimal.NewFromInt(500),
		PaymentMode: domain.ModeUPI,
		RecordedBy:  "accounts",
	})

	suite.Require().NoError(err)
	suite.Equal(services.DefaultPurpose, fee.Purpose)
	suite.Equal(fee.ReceiptID, fee.TransactionID)
	suite.Equal(suite.student.Name, fee.StudentName)
	suite.Equal(suite.student.StudentID, fee.StudentID)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_UnknownStudent_NoWrite() {
	ctx := context.Background()
	suite.mockStudentRepo.On("FindStudentByRef", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:  "NOPE",
		Amount:      decimal.NewFromInt(100),
		PaymentMode: domain.ModeCash,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(fee)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
	suite.mockStudentRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestRecordPayment_ValidationFailures() {
	ctx := context.Background()

	cases := []dto.RecordPaymentInput{
		{StudentRef: "", Amount: decimal.NewFromInt(100), PaymentMode: domain.ModeCash},
		{StudentRef: "COLG24S12345", Amount: decimal.NewFromInt(-1), PaymentMode: domain.ModeCash},
		{StudentRef: "COLG24S12345", Amount: decimal.NewFromInt(100), PaymentMode: "Cheque"},
	}
	for _, input := range cases {
		fee, err := suite.service.RecordPayment(ctx, input)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(fee)
	}
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_GatewayResolvesStrictlyByStudentID() {
	ctx := context.Background()
	var recorded []domain.Fee
	suite.mockStudentRepo.FindStudentByStudentIDFn = func(_ context.Context, studentID string) (*domain.Student, error) {
		suite.Equal(suite.student.StudentID, studentID)
		return &suite.student, nil
	}
	suite.mockFeeRepo.CreatePaymentFn = ledgerBackedCreate(&recorded)

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:    suite.student.StudentID,
		Amount:        decimal.NewFromInt(750),
		PaymentMode:   domain.ModeGateway,
		TransactionID: "pg_txn_123",
		RecordedBy:    "gateway",
	})

	suite.Require().NoError(err)
	suite.Equal("pg_txn_123", fee.TransactionID)
	// The email-or-ID lookup must never be used for gateway notifications.
	suite.mockStudentRepo.AssertNotCalled(suite.T(), "FindStudentByRef", mock.Anything, mock.Anything)
	// Gateway payments are recorded without a rendered document.
	suite.mockRenderer.AssertNotCalled(suite.T(), "Render", mock.Anything)
	suite.Nil(fee.InvoicePath)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_DuplicateReceiptID_Retries() {
	ctx := context.Background()
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}

	var seen []string
	calls := 0
	suite.mockFeeRepo.CreatePaymentFn = func(_ context.Context, fee domain.Fee) (*domain.Fee, error) {
		calls++
		seen = append(seen, fee.ReceiptID)
		if calls == 1 {
			return nil, apperrors.ErrDuplicate
		}
		fee.BalanceAfter = fee.Amount.Neg()
		return &fee, nil
	}

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:  suite.student.StudentID,
		Amount:      decimal.NewFromInt(300),
		PaymentMode: domain.ModeCard,
	})

	suite.Require().NoError(err)
	suite.Equal(2, calls)
	suite.NotEqual(seen[0], seen[1], "a colliding receipt ID must be regenerated, not reused")
	suite.Equal(seen[1], fee.ReceiptID)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_DuplicateReceiptID_GivesUpAfterRetries() {
	ctx := context.Background()
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}
	calls := 0
	suite.mockFeeRepo.CreatePaymentFn = func(_ context.Context, _ domain.Fee) (*domain.Fee, error) {
		calls++
		return nil, apperrors.ErrDuplicate
	}

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:  suite.student.StudentID,
		Amount:      decimal.NewFromInt(300),
		PaymentMode: domain.ModeCash,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(fee)
	suite.Equal(3, calls)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_RendersAndAttachesReceipt() {
	ctx := context.Background()
	var recorded []domain.Fee
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}
	suite.mockFeeRepo.CreatePaymentFn = ledgerBackedCreate(&recorded)
	suite.mockRenderer.RenderFn = func(fee domain.Fee) (string, error) {
		return "receipts/" + fee.ReceiptID + ".pdf", nil
	}
	suite.mockFeeRepo.SetInvoicePathFn = func(_ context.Context, _, _ string) error { return nil }

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:    suite.student.StudentID,
		Amount:        decimal.NewFromInt(1200),
		PaymentMode:   domain.ModeNetbanking,
		RenderReceipt: true,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(fee.InvoicePath)
	suite.Equal("receipts/"+fee.ReceiptID+".pdf", *fee.InvoicePath)
}

func (suite *FeeServiceTestSuite) TestRecordPayment_RenderFailureKeepsPayment() {
	ctx := context.Background()
	var recorded []domain.Fee
	suite.mockStudentRepo.FindStudentByRefFn = func(_ context.Context, _ string) (*domain.Student, error) {
		return &suite.student, nil
	}
	suite.mockFeeRepo.CreatePaymentFn = ledgerBackedCreate(&recorded)
	suite.mockRenderer.RenderFn = func(_ domain.Fee) (string, error) {
		return "", apperrors.ErrRenderFailure
	}

	fee, err := suite.service.RecordPayment(ctx, dto.RecordPaymentInput{
		StudentRef:    suite.student.StudentID,
		Amount:        decimal.NewFromInt(450),
		PaymentMode:   domain.ModeCash,
		RenderReceipt: true,
	})

	// The ledger write wins: the payment is committed even though the
	// document could not be produced.
	suite.Require().NoError(err)
	suite.Len(recorded, 1)
	suite.Nil(fee.InvoicePath)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SetInvoicePath", mock.Anything, mock.Anything, mock.Anything)
}

// --- RegenerateReceipt Tests ---

func (suite *FeeServiceTestSuite) TestRegenerateReceipt_Success() {
	ctx := context.Background()
	existing := &domain.Fee{ReceiptID: "REC-1-1234", Amount: decimal.NewFromInt(100)}

	suite.mockFeeRepo.On("FindFeeByReceiptID", ctx, "REC-1-1234").Return(existing, nil).Once()
	suite.mockRenderer.On("Render", mock.AnythingOfType("domain.Fee")).Return("receipts/REC-1-1234.pdf", nil).Once()
	suite.mockFeeRepo.On("SetInvoicePath", ctx, "REC-1-1234", "receipts/REC-1-1234.pdf").Return(nil).Once()

	fee, err := suite.service.RegenerateReceipt(ctx, "REC-1-1234")

	suite.Require().NoError(err)
	suite.Require().NotNil(fee.InvoicePath)
	suite.Equal("receipts/REC-1-1234.pdf", *fee.InvoicePath)
	suite.mockFeeRepo.AssertExpectations(suite.T())
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestRegenerateReceipt_RenderFailurePropagates() {
	ctx := context.Background()
	existing := &domain.Fee{ReceiptID: "REC-1-5678", Amount: decimal.NewFromInt(100)}

	suite.mockFeeRepo.On("FindFeeByReceiptID", ctx, "REC-1-5678").Return(existing, nil).Once()
	suite.mockRenderer.On("Render", mock.AnythingOfType("domain.Fee")).Return("", apperrors.ErrRenderFailure).Once()

	fee, err := suite.service.RegenerateReceipt(ctx, "REC-1-5678")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRenderFailure)
	suite.Nil(fee)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SetInvoicePath", mock.Anything, mock.Anything, mock.Anything)
}

// --- List / aggregate Tests ---

func (suite *FeeServiceTestSuite) TestListRecentFees_DefaultsLimit() {
	ctx := context.Background()
	suite.mockFeeRepo.On("ListRecentFees", ctx, 20).Return([]domain.Fee{}, nil).Once()

	_, err := suite.service.ListRecentFees(ctx, 0)

	suite.Require().NoError(err)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestListFeesByStudent_ResolvesRefFirst() {
	ctx := context.Background()
	history := []domain.Fee{{ReceiptID: "REC-1-0001"}}

	suite.mockStudentRepo.On("FindStudentByRef", ctx, "asha@example.com").Return(&suite.student, nil).Once()
	suite.mockFeeRepo.On("ListFeesByStudentRef", ctx, suite.student.ID).Return(history, nil).Once()

	fees, err := suite.service.ListFeesByStudent(ctx, "asha@example.com")

	suite.Require().NoError(err)
	suite.Equal(history, fees)
	suite.mockStudentRepo.AssertExpectations(suite.T())
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestTotalCollected() {
	ctx := context.Background()
	total := decimal.RequireFromString("1350.49")
	suite.mockFeeRepo.On("SumFeeAmounts", ctx).Return(total, nil).Once()

	got, err := suite.service.TotalCollected(ctx)

	suite.Require().NoError(err)
	assert.True(suite.T(), total.Equal(got))
}

func TestFeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeServiceTestSuite))
}
