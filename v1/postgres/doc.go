// Package postgres manages the PostgreSQL connection pool used for inventory
// reads.
//
// It is built on GORM with the pgx driver. GORM owns the pool, connection
// monitoring swaps in a fresh pool when pings fail, and GORM's row scanner maps
// result columns onto structs. Statements are written by hand with $n
// placeholders and executed through database/sql, so the SQL that reaches the
// server is exactly the SQL that was built.
//
// Basic Usage:
//
//	pg, err := postgres.NewPostgres(postgres.Config{
//	    Connection: postgres.Connection{
//	        Host: "localhost", Port: "5432", User: "postgres",
//	        Password: "secret", DbName: "inventario", SSLMode: "disable",
//	    },
//	    QueryTimeout: 10 * time.Second,
//	}, log)
//
//	type row struct {
//	    ID   int64  `gorm:"column:id"`
//	    Name string `gorm:"column:name"`
//	}
//	rows, err := postgres.Collect[row](ctx, pg, "SELECT id, name FROM brands WHERE id > $1", 10)
//
// Streaming Rows:
//
// Query hands each row to a callback instead of collecting a slice. ScanRow
// maps the current row with the same column rules as Collect:
//
//	var total int
//	err := pg.Query(ctx, "SELECT id, name FROM brands WHERE name ILIKE $1", []any{"%hp%"},
//	    func(rows *sql.Rows) error {
//	        var r row
//	        if err := pg.ScanRow(rows, &r); err != nil {
//	            return err
//	        }
//	        total++
//	        return nil
//	    })
//
// Every statement runs under Config.QueryTimeout when it is set, on top of
// the caller's context.
//
// Health Checks:
//
//	if err := pg.Ping(ctx); err != nil {
//	    // report the database as down
//	}
//
// Error Handling:
//
// Query and Collect pass driver errors through TranslateError, which wraps
// them with a sentinel (ErrQueryCanceled, ErrConnection, ErrInvalidQuery, ...)
// while keeping the original error in the chain:
//
//	if errors.Is(err, postgres.ErrQueryCanceled) {
//	    // deadline hit or statement cancelled by the server
//	}
//
// GetErrorCategory and IsRetryable classify translated errors further.
//
// Configuration:
//
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=inventario
//	POSTGRES_SSLMODE=disable
//	POSTGRES_MAX_OPEN_CONNS=20
//	POSTGRES_QUERY_TIMEOUT=10s
//
// FX Module Integration:
//
//	app := fx.New(
//	    logger.FXModule,
//	    postgres.FXModule,
//	    fx.Provide(func() postgres.Config { return cfg }),
//	)
//
// Thread Safety:
//
// All methods are safe for concurrent use. The active pool is held in an
// atomic pointer and can be swapped during reconnection without blocking readers.
package postgres
