/*
Package errors implements the error handling used by every valset package.

Reuse the root errors declared in this package whenever possible and
register a package specific root error only when nothing here describes
the failure. x/validatorset registers its own failure taxonomy this way.

If you want to register a custom error - use Register(code, description).
Code stands for the ABCI error code, which allows to distinguish types of
errors on the client side and act accordingly.

Always create an instance with Wrap or Wrapf at the point of failure so
a stacktrace is attached. Once you have an error, you can use fmt to get
more context

	%s is just the error message
	%+v is the full stack trace
*/
package errors
