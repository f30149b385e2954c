// Package strcase converts identifiers between snake, camel and studly case.
//
// The transforms work on ASCII letters only and never fail:
//
//	strcase.Snake("HelloWorld", "_")          // "hello_world"
//	strcase.Camel("hello_world")              // "helloWorld"
//	strcase.Studly("hello-world_test")        // "HelloWorldTest"
//	strcase.SnakeSafe("Ünïçödé TëstCase", "") // "unicode_test_case"
//
// Results are memoized. The package functions share an in-memory LRU store;
// a Converter can be given any memo.Store, including a Redis-backed one:
//
//	conv := strcase.New(strcase.WithStore(memo.NewRedis(client)))
//	conv.Snake(ctx, "UserID", "_") // "user_i_d"
//
// A failing store never changes the result, it only costs a recomputation.
package strcase
