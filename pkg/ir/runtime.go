package ir

// runtimeDeclarations lists the fixed culebra_* extern functions every
// emitted module declares, so the linked C runtime and the emitted IR
// always agree on signatures.
var runtimeDeclarations = []string{
	"declare void @culebra_print(i32, ...)",
	"declare void @culebra_print_int(i64)",
	"declare void @culebra_print_float(double)",
	"declare void @culebra_print_string(i8*)",
	"declare void @culebra_print_bool(i1)",
	"declare void @culebra_print_multi(i32, ...)",
	"declare i8* @culebra_input(i8*)",
	"declare i8* @culebra_str_concat(i8*, i8*)",
	"declare i8* @culebra_int_to_str(i64)",
	"declare i8* @culebra_float_to_str(double)",
	"declare i8* @culebra_bool_to_str(i1)",
	"declare %array* @culebra_create_array(i64, i64)",
	"declare void @culebra_free_array(%array*)",
	"declare i8* @culebra_array_get(%array*, i64)",
	"declare void @culebra_array_set(%array*, i64, i64)",
	"declare i64 @culebra_len_array(%array*)",
	"declare i64 @culebra_len(i8*)",
	"declare i8* @culebra_chr(i64)",
	"declare i64 @culebra_ord(i8*)",
}
