// Package testdb provides database fixtures for tests.
//
// Every call to GetTestDBWithT returns a private in-memory SQLite database
// with the production migrations applied, so store, controller and HTTP tests
// run without external services and can use t.Parallel() freely.
//
//	func TestMyFeature(t *testing.T) {
//	    t.Parallel()
//
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := sqlstore.NewUserStore(tx, testdb.Dialect(), nil)
//	        // ...
//	    })
//	}
package testdb
