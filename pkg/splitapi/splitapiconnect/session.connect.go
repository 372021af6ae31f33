// Package splitapiconnect wires splitapi messages to Connect handlers and clients.
package splitapiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/pkg/splitapi"
)

// SessionServiceName is the fully-qualified name of the SessionService service.
const SessionServiceName = "splitapi.v1.SessionService"

// Procedure paths, of the form "/service/method".
const (
	SessionServiceCreateSessionProcedure         = "/splitapi.v1.SessionService/CreateSession"
	SessionServiceGetSessionProcedure            = "/splitapi.v1.SessionService/GetSession"
	SessionServiceDeleteSessionProcedure         = "/splitapi.v1.SessionService/DeleteSession"
	SessionServiceUploadReceiptsProcedure        = "/splitapi.v1.SessionService/UploadReceipts"
	SessionServiceLoadDemoReceiptProcedure       = "/splitapi.v1.SessionService/LoadDemoReceipt"
	SessionServiceRemoveReceiptProcedure         = "/splitapi.v1.SessionService/RemoveReceipt"
	SessionServiceUpdateItemProcedure            = "/splitapi.v1.SessionService/UpdateItem"
	SessionServiceUpdateTaxProcedure             = "/splitapi.v1.SessionService/UpdateTax"
	SessionServiceAddTaxProcedure                = "/splitapi.v1.SessionService/AddTax"
	SessionServiceRemoveTaxProcedure             = "/splitapi.v1.SessionService/RemoveTax"
	SessionServiceSetDiscountProcedure           = "/splitapi.v1.SessionService/SetDiscount"
	SessionServiceSetParticipantsProcedure       = "/splitapi.v1.SessionService/SetParticipants"
	SessionServiceAssignLinesProcedure           = "/splitapi.v1.SessionService/AssignLines"
	SessionServiceToggleContributorProcedure     = "/splitapi.v1.SessionService/ToggleContributor"
	SessionServiceToggleCustomModeProcedure      = "/splitapi.v1.SessionService/ToggleCustomMode"
	SessionServiceSetCustomAmountProcedure       = "/splitapi.v1.SessionService/SetCustomAmount"
	SessionServiceToggleAllContributorsProcedure = "/splitapi.v1.SessionService/ToggleAllContributors"
	SessionServiceCalculateSplitProcedure        = "/splitapi.v1.SessionService/CalculateSplit"
	SessionServiceSetPayerProcedure              = "/splitapi.v1.SessionService/SetPayer"
	SessionServiceGetPaidTotalsProcedure         = "/splitapi.v1.SessionService/GetPaidTotals"
)

// SessionServiceClient is a client for the splitapi.v1.SessionService service.
type SessionServiceClient interface {
	CreateSession(context.Context, *connect.Request[splitapi.CreateSessionRequest]) (*connect.Response[splitapi.CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[splitapi.GetSessionRequest]) (*connect.Response[splitapi.SessionResponse], error)
	DeleteSession(context.Context, *connect.Request[splitapi.DeleteSessionRequest]) (*connect.Response[splitapi.DeleteSessionResponse], error)
	UploadReceipts(context.Context, *connect.Request[splitapi.UploadReceiptsRequest]) (*connect.Response[splitapi.UploadReceiptsResponse], error)
	LoadDemoReceipt(context.Context, *connect.Request[splitapi.LoadDemoReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error)
	RemoveReceipt(context.Context, *connect.Request[splitapi.RemoveReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error)
	UpdateItem(context.Context, *connect.Request[splitapi.UpdateItemRequest]) (*connect.Response[splitapi.SessionResponse], error)
	UpdateTax(context.Context, *connect.Request[splitapi.UpdateTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	AddTax(context.Context, *connect.Request[splitapi.AddTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	RemoveTax(context.Context, *connect.Request[splitapi.RemoveTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetDiscount(context.Context, *connect.Request[splitapi.SetDiscountRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetParticipants(context.Context, *connect.Request[splitapi.SetParticipantsRequest]) (*connect.Response[splitapi.SessionResponse], error)
	AssignLines(context.Context, *connect.Request[splitapi.AssignLinesRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleContributor(context.Context, *connect.Request[splitapi.ToggleContributorRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleCustomMode(context.Context, *connect.Request[splitapi.ToggleCustomModeRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetCustomAmount(context.Context, *connect.Request[splitapi.SetCustomAmountRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleAllContributors(context.Context, *connect.Request[splitapi.ToggleAllContributorsRequest]) (*connect.Response[splitapi.SessionResponse], error)
	CalculateSplit(context.Context, *connect.Request[splitapi.CalculateSplitRequest]) (*connect.Response[splitapi.CalculateSplitResponse], error)
	SetPayer(context.Context, *connect.Request[splitapi.SetPayerRequest]) (*connect.Response[splitapi.SessionResponse], error)
	GetPaidTotals(context.Context, *connect.Request[splitapi.GetPaidTotalsRequest]) (*connect.Response[splitapi.GetPaidTotalsResponse], error)
}

// NewSessionServiceClient constructs a client for the splitapi.v1.SessionService service.
// Messages are sent as JSON; callers may add further options.
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SessionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &sessionServiceClient{
		createSession:         connect.NewClient[splitapi.CreateSessionRequest, splitapi.CreateSessionResponse](httpClient, baseURL+SessionServiceCreateSessionProcedure, opts...),
		getSession:            connect.NewClient[splitapi.GetSessionRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceGetSessionProcedure, opts...),
		deleteSession:         connect.NewClient[splitapi.DeleteSessionRequest, splitapi.DeleteSessionResponse](httpClient, baseURL+SessionServiceDeleteSessionProcedure, opts...),
		uploadReceipts:        connect.NewClient[splitapi.UploadReceiptsRequest, splitapi.UploadReceiptsResponse](httpClient, baseURL+SessionServiceUploadReceiptsProcedure, opts...),
		loadDemoReceipt:       connect.NewClient[splitapi.LoadDemoReceiptRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceLoadDemoReceiptProcedure, opts...),
		removeReceipt:         connect.NewClient[splitapi.RemoveReceiptRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceRemoveReceiptProcedure, opts...),
		updateItem:            connect.NewClient[splitapi.UpdateItemRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceUpdateItemProcedure, opts...),
		updateTax:             connect.NewClient[splitapi.UpdateTaxRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceUpdateTaxProcedure, opts...),
		addTax:                connect.NewClient[splitapi.AddTaxRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceAddTaxProcedure, opts...),
		removeTax:             connect.NewClient[splitapi.RemoveTaxRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceRemoveTaxProcedure, opts...),
		setDiscount:           connect.NewClient[splitapi.SetDiscountRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceSetDiscountProcedure, opts...),
		setParticipants:       connect.NewClient[splitapi.SetParticipantsRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceSetParticipantsProcedure, opts...),
		assignLines:           connect.NewClient[splitapi.AssignLinesRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceAssignLinesProcedure, opts...),
		toggleContributor:     connect.NewClient[splitapi.ToggleContributorRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceToggleContributorProcedure, opts...),
		toggleCustomMode:      connect.NewClient[splitapi.ToggleCustomModeRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceToggleCustomModeProcedure, opts...),
		setCustomAmount:       connect.NewClient[splitapi.SetCustomAmountRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceSetCustomAmountProcedure, opts...),
		toggleAllContributors: connect.NewClient[splitapi.ToggleAllContributorsRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceToggleAllContributorsProcedure, opts...),
		calculateSplit:        connect.NewClient[splitapi.CalculateSplitRequest, splitapi.CalculateSplitResponse](httpClient, baseURL+SessionServiceCalculateSplitProcedure, opts...),
		setPayer:              connect.NewClient[splitapi.SetPayerRequest, splitapi.SessionResponse](httpClient, baseURL+SessionServiceSetPayerProcedure, opts...),
		getPaidTotals:         connect.NewClient[splitapi.GetPaidTotalsRequest, splitapi.GetPaidTotalsResponse](httpClient, baseURL+SessionServiceGetPaidTotalsProcedure, opts...),
	}
}

type sessionServiceClient struct {
	createSession         *connect.Client[splitapi.CreateSessionRequest, splitapi.CreateSessionResponse]
	getSession            *connect.Client[splitapi.GetSessionRequest, splitapi.SessionResponse]
	deleteSession         *connect.Client[splitapi.DeleteSessionRequest, splitapi.DeleteSessionResponse]
	uploadReceipts        *connect.Client[splitapi.UploadReceiptsRequest, splitapi.UploadReceiptsResponse]
	loadDemoReceipt       *connect.Client[splitapi.LoadDemoReceiptRequest, splitapi.SessionResponse]
	removeReceipt         *connect.Client[splitapi.RemoveReceiptRequest, splitapi.SessionResponse]
	updateItem            *connect.Client[splitapi.UpdateItemRequest, splitapi.SessionResponse]
	updateTax             *connect.Client[splitapi.UpdateTaxRequest, splitapi.SessionResponse]
	addTax                *connect.Client[splitapi.AddTaxRequest, splitapi.SessionResponse]
	removeTax             *connect.Client[splitapi.RemoveTaxRequest, splitapi.SessionResponse]
	setDiscount           *connect.Client[splitapi.SetDiscountRequest, splitapi.SessionResponse]
	setParticipants       *connect.Client[splitapi.SetParticipantsRequest, splitapi.SessionResponse]
	assignLines           *connect.Client[splitapi.AssignLinesRequest, splitapi.SessionResponse]
	toggleContributor     *connect.Client[splitapi.ToggleContributorRequest, splitapi.SessionResponse]
	toggleCustomMode      *connect.Client[splitapi.ToggleCustomModeRequest, splitapi.SessionResponse]
	setCustomAmount       *connect.Client[splitapi.SetCustomAmountRequest, splitapi.SessionResponse]
	toggleAllContributors *connect.Client[splitapi.ToggleAllContributorsRequest, splitapi.SessionResponse]
	calculateSplit        *connect.Client[splitapi.CalculateSplitRequest, splitapi.CalculateSplitResponse]
	setPayer              *connect.Client[splitapi.SetPayerRequest, splitapi.SessionResponse]
	getPaidTotals         *connect.Client[splitapi.GetPaidTotalsRequest, splitapi.GetPaidTotalsResponse]
}

func (c *sessionServiceClient) CreateSession(ctx context.Context, req *connect.Request[splitapi.CreateSessionRequest]) (*connect.Response[splitapi.CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) GetSession(ctx context.Context, req *connect.Request[splitapi.GetSessionRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) DeleteSession(ctx context.Context, req *connect.Request[splitapi.DeleteSessionRequest]) (*connect.Response[splitapi.DeleteSessionResponse], error) {
	return c.deleteSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) UploadReceipts(ctx context.Context, req *connect.Request[splitapi.UploadReceiptsRequest]) (*connect.Response[splitapi.UploadReceiptsResponse], error) {
	return c.uploadReceipts.CallUnary(ctx, req)
}

func (c *sessionServiceClient) LoadDemoReceipt(ctx context.Context, req *connect.Request[splitapi.LoadDemoReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.loadDemoReceipt.CallUnary(ctx, req)
}

func (c *sessionServiceClient) RemoveReceipt(ctx context.Context, req *connect.Request[splitapi.RemoveReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.removeReceipt.CallUnary(ctx, req)
}

func (c *sessionServiceClient) UpdateItem(ctx context.Context, req *connect.Request[splitapi.UpdateItemRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *sessionServiceClient) UpdateTax(ctx context.Context, req *connect.Request[splitapi.UpdateTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.updateTax.CallUnary(ctx, req)
}

func (c *sessionServiceClient) AddTax(ctx context.Context, req *connect.Request[splitapi.AddTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.addTax.CallUnary(ctx, req)
}

func (c *sessionServiceClient) RemoveTax(ctx context.Context, req *connect.Request[splitapi.RemoveTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.removeTax.CallUnary(ctx, req)
}

func (c *sessionServiceClient) SetDiscount(ctx context.Context, req *connect.Request[splitapi.SetDiscountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.setDiscount.CallUnary(ctx, req)
}

func (c *sessionServiceClient) SetParticipants(ctx context.Context, req *connect.Request[splitapi.SetParticipantsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.setParticipants.CallUnary(ctx, req)
}

func (c *sessionServiceClient) AssignLines(ctx context.Context, req *connect.Request[splitapi.AssignLinesRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.assignLines.CallUnary(ctx, req)
}

func (c *sessionServiceClient) ToggleContributor(ctx context.Context, req *connect.Request[splitapi.ToggleContributorRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.toggleContributor.CallUnary(ctx, req)
}

func (c *sessionServiceClient) ToggleCustomMode(ctx context.Context, req *connect.Request[splitapi.ToggleCustomModeRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.toggleCustomMode.CallUnary(ctx, req)
}

func (c *sessionServiceClient) SetCustomAmount(ctx context.Context, req *connect.Request[splitapi.SetCustomAmountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.setCustomAmount.CallUnary(ctx, req)
}

func (c *sessionServiceClient) ToggleAllContributors(ctx context.Context, req *connect.Request[splitapi.ToggleAllContributorsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.toggleAllContributors.CallUnary(ctx, req)
}

func (c *sessionServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[splitapi.CalculateSplitRequest]) (*connect.Response[splitapi.CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

func (c *sessionServiceClient) SetPayer(ctx context.Context, req *connect.Request[splitapi.SetPayerRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return c.setPayer.CallUnary(ctx, req)
}

func (c *sessionServiceClient) GetPaidTotals(ctx context.Context, req *connect.Request[splitapi.GetPaidTotalsRequest]) (*connect.Response[splitapi.GetPaidTotalsResponse], error) {
	return c.getPaidTotals.CallUnary(ctx, req)
}

// SessionServiceHandler is implemented by the splitapi.v1.SessionService server.
type SessionServiceHandler interface {
	CreateSession(context.Context, *connect.Request[splitapi.CreateSessionRequest]) (*connect.Response[splitapi.CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[splitapi.GetSessionRequest]) (*connect.Response[splitapi.SessionResponse], error)
	DeleteSession(context.Context, *connect.Request[splitapi.DeleteSessionRequest]) (*connect.Response[splitapi.DeleteSessionResponse], error)
	UploadReceipts(context.Context, *connect.Request[splitapi.UploadReceiptsRequest]) (*connect.Response[splitapi.UploadReceiptsResponse], error)
	LoadDemoReceipt(context.Context, *connect.Request[splitapi.LoadDemoReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error)
	RemoveReceipt(context.Context, *connect.Request[splitapi.RemoveReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error)
	UpdateItem(context.Context, *connect.Request[splitapi.UpdateItemRequest]) (*connect.Response[splitapi.SessionResponse], error)
	UpdateTax(context.Context, *connect.Request[splitapi.UpdateTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	AddTax(context.Context, *connect.Request[splitapi.AddTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	RemoveTax(context.Context, *connect.Request[splitapi.RemoveTaxRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetDiscount(context.Context, *connect.Request[splitapi.SetDiscountRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetParticipants(context.Context, *connect.Request[splitapi.SetParticipantsRequest]) (*connect.Response[splitapi.SessionResponse], error)
	AssignLines(context.Context, *connect.Request[splitapi.AssignLinesRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleContributor(context.Context, *connect.Request[splitapi.ToggleContributorRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleCustomMode(context.Context, *connect.Request[splitapi.ToggleCustomModeRequest]) (*connect.Response[splitapi.SessionResponse], error)
	SetCustomAmount(context.Context, *connect.Request[splitapi.SetCustomAmountRequest]) (*connect.Response[splitapi.SessionResponse], error)
	ToggleAllContributors(context.Context, *connect.Request[splitapi.ToggleAllContributorsRequest]) (*connect.Response[splitapi.SessionResponse], error)
	CalculateSplit(context.Context, *connect.Request[splitapi.CalculateSplitRequest]) (*connect.Response[splitapi.CalculateSplitResponse], error)
	SetPayer(context.Context, *connect.Request[splitapi.SetPayerRequest]) (*connect.Response[splitapi.SessionResponse], error)
	GetPaidTotals(context.Context, *connect.Request[splitapi.GetPaidTotalsRequest]) (*connect.Response[splitapi.GetPaidTotalsResponse], error)
}

// NewSessionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSessionServiceHandler(svc SessionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	handlers := map[string]http.Handler{
		SessionServiceCreateSessionProcedure:         connect.NewUnaryHandler(SessionServiceCreateSessionProcedure, svc.CreateSession, opts...),
		SessionServiceGetSessionProcedure:            connect.NewUnaryHandler(SessionServiceGetSessionProcedure, svc.GetSession, opts...),
		SessionServiceDeleteSessionProcedure:         connect.NewUnaryHandler(SessionServiceDeleteSessionProcedure, svc.DeleteSession, opts...),
		SessionServiceUploadReceiptsProcedure:        connect.NewUnaryHandler(SessionServiceUploadReceiptsProcedure, svc.UploadReceipts, opts...),
		SessionServiceLoadDemoReceiptProcedure:       connect.NewUnaryHandler(SessionServiceLoadDemoReceiptProcedure, svc.LoadDemoReceipt, opts...),
		SessionServiceRemoveReceiptProcedure:         connect.NewUnaryHandler(SessionServiceRemoveReceiptProcedure, svc.RemoveReceipt, opts...),
		SessionServiceUpdateItemProcedure:            connect.NewUnaryHandler(SessionServiceUpdateItemProcedure, svc.UpdateItem, opts...),
		SessionServiceUpdateTaxProcedure:             connect.NewUnaryHandler(SessionServiceUpdateTaxProcedure, svc.UpdateTax, opts...),
		SessionServiceAddTaxProcedure:                connect.NewUnaryHandler(SessionServiceAddTaxProcedure, svc.AddTax, opts...),
		SessionServiceRemoveTaxProcedure:             connect.NewUnaryHandler(SessionServiceRemoveTaxProcedure, svc.RemoveTax, opts...),
		SessionServiceSetDiscountProcedure:           connect.NewUnaryHandler(SessionServiceSetDiscountProcedure, svc.SetDiscount, opts...),
		SessionServiceSetParticipantsProcedure:       connect.NewUnaryHandler(SessionServiceSetParticipantsProcedure, svc.SetParticipants, opts...),
		SessionServiceAssignLinesProcedure:           connect.NewUnaryHandler(SessionServiceAssignLinesProcedure, svc.AssignLines, opts...),
		SessionServiceToggleContributorProcedure:     connect.NewUnaryHandler(SessionServiceToggleContributorProcedure, svc.ToggleContributor, opts...),
		SessionServiceToggleCustomModeProcedure:      connect.NewUnaryHandler(SessionServiceToggleCustomModeProcedure, svc.ToggleCustomMode, opts...),
		SessionServiceSetCustomAmountProcedure:       connect.NewUnaryHandler(SessionServiceSetCustomAmountProcedure, svc.SetCustomAmount, opts...),
		SessionServiceToggleAllContributorsProcedure: connect.NewUnaryHandler(SessionServiceToggleAllContributorsProcedure, svc.ToggleAllContributors, opts...),
		SessionServiceCalculateSplitProcedure:        connect.NewUnaryHandler(SessionServiceCalculateSplitProcedure, svc.CalculateSplit, opts...),
		SessionServiceSetPayerProcedure:              connect.NewUnaryHandler(SessionServiceSetPayerProcedure, svc.SetPayer, opts...),
		SessionServiceGetPaidTotalsProcedure:         connect.NewUnaryHandler(SessionServiceGetPaidTotalsProcedure, svc.GetPaidTotals, opts...),
	}
	return "/" + SessionServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedSessionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSessionServiceHandler struct{}

func (UnimplementedSessionServiceHandler) CreateSession(context.Context, *connect.Request[splitapi.CreateSessionRequest]) (*connect.Response[splitapi.CreateSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.CreateSession is not implemented"))
}

func (UnimplementedSessionServiceHandler) GetSession(context.Context, *connect.Request[splitapi.GetSessionRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.GetSession is not implemented"))
}

func (UnimplementedSessionServiceHandler) DeleteSession(context.Context, *connect.Request[splitapi.DeleteSessionRequest]) (*connect.Response[splitapi.DeleteSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.DeleteSession is not implemented"))
}

func (UnimplementedSessionServiceHandler) UploadReceipts(context.Context, *connect.Request[splitapi.UploadReceiptsRequest]) (*connect.Response[splitapi.UploadReceiptsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.UploadReceipts is not implemented"))
}

func (UnimplementedSessionServiceHandler) LoadDemoReceipt(context.Context, *connect.Request[splitapi.LoadDemoReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.LoadDemoReceipt is not implemented"))
}

func (UnimplementedSessionServiceHandler) RemoveReceipt(context.Context, *connect.Request[splitapi.RemoveReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.RemoveReceipt is not implemented"))
}

func (UnimplementedSessionServiceHandler) UpdateItem(context.Context, *connect.Request[splitapi.UpdateItemRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.UpdateItem is not implemented"))
}

func (UnimplementedSessionServiceHandler) UpdateTax(context.Context, *connect.Request[splitapi.UpdateTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.UpdateTax is not implemented"))
}

func (UnimplementedSessionServiceHandler) AddTax(context.Context, *connect.Request[splitapi.AddTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.AddTax is not implemented"))
}

func (UnimplementedSessionServiceHandler) RemoveTax(context.Context, *connect.Request[splitapi.RemoveTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.RemoveTax is not implemented"))
}

func (UnimplementedSessionServiceHandler) SetDiscount(context.Context, *connect.Request[splitapi.SetDiscountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.SetDiscount is not implemented"))
}

func (UnimplementedSessionServiceHandler) SetParticipants(context.Context, *connect.Request[splitapi.SetParticipantsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.SetParticipants is not implemented"))
}

func (UnimplementedSessionServiceHandler) AssignLines(context.Context, *connect.Request[splitapi.AssignLinesRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.AssignLines is not implemented"))
}

func (UnimplementedSessionServiceHandler) ToggleContributor(context.Context, *connect.Request[splitapi.ToggleContributorRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.ToggleContributor is not implemented"))
}

func (UnimplementedSessionServiceHandler) ToggleCustomMode(context.Context, *connect.Request[splitapi.ToggleCustomModeRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.ToggleCustomMode is not implemented"))
}

func (UnimplementedSessionServiceHandler) SetCustomAmount(context.Context, *connect.Request[splitapi.SetCustomAmountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.SetCustomAmount is not implemented"))
}

func (UnimplementedSessionServiceHandler) ToggleAllContributors(context.Context, *connect.Request[splitapi.ToggleAllContributorsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.ToggleAllContributors is not implemented"))
}

func (UnimplementedSessionServiceHandler) CalculateSplit(context.Context, *connect.Request[splitapi.CalculateSplitRequest]) (*connect.Response[splitapi.CalculateSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.CalculateSplit is not implemented"))
}

func (UnimplementedSessionServiceHandler) SetPayer(context.Context, *connect.Request[splitapi.SetPayerRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.SetPayer is not implemented"))
}

func (UnimplementedSessionServiceHandler) GetPaidTotals(context.Context, *connect.Request[splitapi.GetPaidTotalsRequest]) (*connect.Response[splitapi.GetPaidTotalsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitapi.v1.SessionService.GetPaidTotals is not implemented"))
}
