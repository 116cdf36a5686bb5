// Package builder illustrates the Builder pattern with phone configurations.
//
// Roles:
//
//   - Phone: the product, a plain value with four fields.
//   - PhoneBuilder: the abstract builder, one method per construction step.
//   - Phone15ProBuilder, Phone15ProMaxBuilder: concrete builders, each filling
//     the steps with fixed literals.
//   - Director: sequences the steps in a fixed order (size, fps, focal,
//     battery) and hands the finished Phone to the caller.
//
// The Director returns the Phone by value. A builder keeps its own in-progress
// product, so running a second build on the same builder overwrites that
// product in place; values already handed out are not affected.
//
// Example:
//
//	d := builder.NewDirector(builder.NewPhone15ProBuilder())
//	fmt.Println(d.CreatePhone()) // Phone{size=5.8, fps=120, focal=3, battery=3200}
package builder
