package FD2D

/*
	Explicit diffusion: phi_next = phi + kappa*dt*Lap(phi) with the
	standard 5-point Laplacian. Boundary neighbors resolve through the
	field's extrapolation policy, so a "boundary" (clamp) field diffuses
	with zero flux through the walls while a "zero" field loses to a
	cold wall. The scheme is conditionally stable; callers must keep
	kappa*dt*2*(1/dx^2 + 1/dy^2) <= 1.
*/

// DiffuseScalar applies one explicit diffusion step at diffusivity
// kappa. kappa == 0 is the identity.
func DiffuseScalar(phi ScalarField, kappa, dt float64) (R ScalarField) {
	if kappa == 0 || dt == 0 {
		R = phi.Copy()
		return
	}
	var (
		idx2 = 1. / (phi.Dx() * phi.Dx())
		idy2 = 1. / (phi.Dy() * phi.Dy())
		a    = kappa * dt
	)
	R = NewScalarField(phi.Box, phi.Nx, phi.Ny, phi.Extrap)
	parRange(phi.Ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 0; i < phi.Nx; i++ {
				c := phi.V.At(j, i)
				lap := (phi.at(i-1, j)+phi.at(i+1, j)-2*c)*idx2 +
					(phi.at(i, j-1)+phi.at(i, j+1)-2*c)*idy2
				R.V.Set(j, i, c+a*lap)
			}
		}
	})
	return
}

// DiffuseVector applies one explicit diffusion step at kinematic
// viscosity nu to each staggered component independently.
func DiffuseVector(vf VectorField, nu, dt float64) (R VectorField) {
	if nu == 0 || dt == 0 {
		R = vf.Copy()
		return
	}
	var (
		idx2 = 1. / (vf.Dx() * vf.Dx())
		idy2 = 1. / (vf.Dy() * vf.Dy())
		a    = nu * dt
	)
	R = NewVectorField(vf.Box, vf.Nx, vf.Ny, vf.Extrap)
	parRange(vf.Ny, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 0; i <= vf.Nx; i++ {
				c := vf.U.At(j, i)
				lap := (vf.atU(i-1, j)+vf.atU(i+1, j)-2*c)*idx2 +
					(vf.atU(i, j-1)+vf.atU(i, j+1)-2*c)*idy2
				R.U.Set(j, i, c+a*lap)
			}
		}
	})
	parRange(vf.Ny+1, func(jmin, jmax int) {
		for j := jmin; j < jmax; j++ {
			for i := 0; i < vf.Nx; i++ {
				c := vf.V.At(j, i)
				lap := (vf.atV(i-1, j)+vf.atV(i+1, j)-2*c)*idx2 +
					(vf.atV(i, j-1)+vf.atV(i, j+1)-2*c)*idy2
				R.V.Set(j, i, c+a*lap)
			}
		}
	})
	return
}

// DiffusionStabilityLimit returns the largest diffusivity*dt product
// the explicit scheme tolerates on an (nx,ny) grid over box.
func DiffusionStabilityLimit(box Box, nx, ny int) float64 {
	var (
		dx = box.Lx / float64(nx)
		dy = box.Ly / float64(ny)
	)
	return 0.5 / (1./(dx*dx) + 1./(dy*dy))
}
