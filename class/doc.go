// Package class implements the class and assignment records tracked by skid
// and the flat text document they are persisted in.
//
// A document holds one class per line:
//
//	id,name,period[,[name;DD-MM-YYYY]...][,completed name...]
//
// Fields are split on commas and nothing is escaped, so names containing
// ',', ';', '[' or ']' do not survive a round trip.
//
// The public API mirrors the session commands:
//   - Store.Create, Store.Remove, Store.Get for class lifecycle
//   - Class.AddAssignment, CompleteAssignment, RemoveAssignment, Modify, Clean
//   - Store.Sorted, Late, AllAssignments, AllCompleted, Klog for querying
//   - Store.Encode and Decoder for persistence
package class
