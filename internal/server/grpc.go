package server

import (
	"MarginSettle/internal/ingestion"
	"MarginSettle/internal/observability"
	"MarginSettle/internal/persistence"
	"MarginSettle/internal/projection"
	"MarginSettle/internal/query"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "MarginSettle/gen/go/marginsettle/admin/v1"
	eventsv1 "MarginSettle/gen/go/marginsettle/events/v1"
	ingestv1 "MarginSettle/gen/go/marginsettle/ingest/v1"
	queryv1 "MarginSettle/gen/go/marginsettle/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.QueryService
	IngestService *ingestion.GRPCIngestService
	SnapshotMgr   *persistence.SnapshotManager
	// TriggerSnapshot asks the core loop for an on-demand snapshot and
	// returns the sequence it was taken at.
	TriggerSnapshot func(ctx context.Context) (int64, error)
	StartTime       time.Time
	HealthChecker   *observability.HealthChecker
	Metrics         *observability.Metrics
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	// Register services
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{
		qs:      deps.QueryService,
		metrics: deps.Metrics,
	})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:              deps.DB,
		snapMgr:         deps.SnapshotMgr,
		queryService:    deps.QueryService,
		triggerSnapshot: deps.TriggerSnapshot,
		startTime:       deps.StartTime,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served via gRPC-Gateway for tooling, dashboards, curl.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	// Register gateway handlers — they proxy HTTP/JSON to the gRPC server
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs      *query.QueryService
	metrics *observability.Metrics
}

func (s *queryServiceImpl) observe(endpoint string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.QueryRequests.WithLabelValues(endpoint, outcome).Inc()
	s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.QueryErrors.WithLabelValues(endpoint, status.Code(err).String()).Inc()
	}
}

func (s *queryServiceImpl) GetBalance(ctx context.Context, req *queryv1.GetBalanceRequest) (resp *queryv1.GetBalanceResponse, err error) {
	start := time.Now()
	defer func() { s.observe("get_balance", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	bal, err := s.qs.GetBalance(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get balance: %v", err)
	}

	return &queryv1.GetBalanceResponse{
		AccountId:    req.AccountId,
		Collateral:   bal.Collateral,
		AsOfSequence: bal.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListPositions(ctx context.Context, req *queryv1.ListPositionsRequest) (resp *queryv1.ListPositionsResponse, err error) {
	start := time.Now()
	defer func() { s.observe("list_positions", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	positions, err := s.qs.GetPositions(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get positions: %v", err)
	}

	var pbPositions []*queryv1.Position
	var asOf int64
	for _, p := range positions {
		pbPositions = append(pbPositions, &queryv1.Position{
			AccountId:       p.AccountID.String(),
			Market:          p.Market,
			Size:            p.Size,
			EntryPrice:      p.EntryPrice,
			LastFundingRate: p.LastFundingRate,
			Version:         p.Version,
		})
		asOf = p.AsOfSequence
	}

	return &queryv1.ListPositionsResponse{
		Positions:    pbPositions,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) GetAccountSummary(ctx context.Context, req *queryv1.GetAccountSummaryRequest) (resp *queryv1.GetAccountSummaryResponse, err error) {
	start := time.Now()
	defer func() { s.observe("get_account_summary", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	summary, err := s.qs.GetAccountSummary(ctx, accountID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get summary: %v", err)
	}

	var pbPositions []*queryv1.Position
	for _, p := range summary.Positions {
		pbPositions = append(pbPositions, &queryv1.Position{
			AccountId:       p.AccountID.String(),
			Market:          p.Market,
			Size:            p.Size,
			EntryPrice:      p.EntryPrice,
			LastFundingRate: p.LastFundingRate,
			Version:         p.Version,
		})
	}

	return &queryv1.GetAccountSummaryResponse{
		AccountId:    req.AccountId,
		Collateral:   summary.Balance.Collateral,
		Positions:    pbPositions,
		AsOfSequence: summary.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListSettlements(ctx context.Context, req *queryv1.ListSettlementsRequest) (resp *queryv1.ListSettlementsResponse, err error) {
	start := time.Now()
	defer func() { s.observe("list_settlements", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var market *string
	if req.Market != "" {
		market = &req.Market
	}

	var afterSeq *int64
	if req.FromSequence > 0 {
		afterSeq = &req.FromSequence
	}

	history, err := s.qs.GetSettlementHistory(ctx, accountID, market, pageSize, afterSeq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get settlements: %v", err)
	}

	var records []*queryv1.SettlementRecord
	var asOf int64
	for _, h := range history {
		records = append(records, &queryv1.SettlementRecord{
			Sequence:       h.Sequence,
			AccountId:      h.AccountID.String(),
			Market:         h.Market,
			Size:           h.Size,
			OraclePrice:    h.OraclePrice,
			FundingRate:    h.FundingRate,
			UnrealizedPnl:  h.UnrealizedPnL,
			FundingPayment: h.FundingPayment,
			NetSettlement:  h.NetSettlement,
			NewCollateral:  h.NewCollateral,
			TimestampUs:    h.Timestamp,
		})
		asOf = h.AsOfSequence
	}

	return &queryv1.ListSettlementsResponse{
		Settlements:  records,
		AsOfSequence: asOf,
	}, nil
}

func (s *queryServiceImpl) GetStatus(ctx context.Context, req *queryv1.GetStatusRequest) (resp *queryv1.GetStatusResponse, err error) {
	start := time.Now()
	defer func() { s.observe("get_status", start, err) }()

	st, err := s.qs.GetStatus(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get status: %v", err)
	}

	return &queryv1.GetStatusResponse{
		LatestSequence: st.LatestSequence,
		AsOfSequence:   st.AsOfSequence,
		ProjectionLag:  st.ProjectionLag,
	}, nil
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitEvent(ctx context.Context, req *ingestv1.SubmitEventRequest) (*ingestv1.SubmitEventResponse, error) {
	if req.Event == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}

	// Map protobuf EventType enum to the parser's event type name
	eventTypeName := protoEventTypeToString(req.Event.EventType)
	if eventTypeName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unknown event_type: %d", req.Event.EventType)
	}

	raw := ingestion.RawEvent{
		Subject: eventTypeName,
		Data:    req.Event.Payload,
	}

	evt, err := ingestion.ParseRawEvent(raw, eventTypeName)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "parse payload: %v", err)
	}

	// Inject into the event channel (same path as GRPCIngestService)
	select {
	case s.svc.EventChan() <- evt:
		return &ingestv1.SubmitEventResponse{Accepted: true}, nil
	case <-ctx.Done():
		return nil, status.Error(codes.DeadlineExceeded, "context cancelled")
	}
}

func protoEventTypeToString(et eventsv1.EventType) string {
	switch et {
	case eventsv1.EventType_EVENT_TYPE_DEPOSIT_CONFIRMED:
		return "DepositConfirmed"
	case eventsv1.EventType_EVENT_TYPE_WITHDRAWAL_REQUESTED:
		return "WithdrawalRequested"
	case eventsv1.EventType_EVENT_TYPE_ORACLE_PRICE_UPDATE:
		return "OraclePriceUpdate"
	case eventsv1.EventType_EVENT_TYPE_FUNDING_RATE_UPDATE:
		return "FundingRateUpdate"
	case eventsv1.EventType_EVENT_TYPE_POSITION_OPENED:
		return "PositionOpened"
	case eventsv1.EventType_EVENT_TYPE_SETTLEMENT_REQUEST:
		return "SettlementRequest"
	default:
		return ""
	}
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db              *sql.DB
	snapMgr         *persistence.SnapshotManager
	queryService    *query.QueryService
	triggerSnapshot func(ctx context.Context) (int64, error)
	startTime       time.Time
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	if s.triggerSnapshot == nil {
		return nil, status.Error(codes.Unavailable, "snapshot trigger not wired")
	}

	seq, err := s.triggerSnapshot(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot: %v", err)
	}

	return &adminv1.TakeSnapshotResponse{Sequence: seq}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{
		Started: true,
		TaskId:  "rebuild-sync",
	}, nil
}

func (s *adminServiceImpl) GetEventLogInfo(ctx context.Context, req *adminv1.GetEventLogInfoRequest) (*adminv1.GetEventLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetEventLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		} else if len(report.ConservationBreaks) > 0 {
			resp.FirstMismatchSequence = report.ConservationBreaks[0]
		} else if len(report.CheckpointMismatches) > 0 {
			resp.FirstMismatchSequence = report.CheckpointMismatches[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d conservation breaks, %d checkpoint mismatches",
			len(report.HashChainBreaks), len(report.ConservationBreaks), len(report.CheckpointMismatches))
	}

	return resp, nil
}

// ============================================================================
// Helpers
// ============================================================================

func parseUUID(s string) (googleuuid.UUID, error) {
	return googleuuid.Parse(s)
}
